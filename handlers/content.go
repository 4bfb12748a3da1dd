package handlers

import (
	"net/http"

	"yogasund/services/content"
	"yogasund/utils"

	"github.com/gin-gonic/gin"
)

// ListTeachersHandler returns the active teacher profiles.
func ListTeachersHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		teachers, err := svc.ListTeachers(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load teachers", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"teachers": teachers})
	}
}

// GetTeacherHandler returns one teacher profile by slug.
func GetTeacherHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		teacher, err := svc.GetTeacher(c.Request.Context(), c.Param("slug"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load teacher", err.Error())
			return
		}
		if teacher == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Teacher not found"})
			return
		}
		c.JSON(http.StatusOK, teacher)
	}
}

// ListClassStylesHandler returns the class style catalog.
func ListClassStylesHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		styles, err := svc.ListClassStyles(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load class styles", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"styles": styles})
	}
}

// GetClassStyleHandler returns one class style by slug.
func GetClassStyleHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		style, err := svc.GetClassStyle(c.Request.Context(), c.Param("slug"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load class style", err.Error())
			return
		}
		if style == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class style not found"})
			return
		}
		c.JSON(http.StatusOK, style)
	}
}

// ListArticlesHandler returns published wellbeing articles, newest first.
func ListArticlesHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		articles, err := svc.ListArticles(c.Request.Context())
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load articles", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"articles": articles})
	}
}

// GetArticleHandler returns one article by slug.
func GetArticleHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		article, err := svc.GetArticle(c.Request.Context(), c.Param("slug"))
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load article", err.Error())
			return
		}
		if article == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusOK, article)
	}
}
