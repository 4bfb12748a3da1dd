package handlers

import (
	"net/http"

	"yogasund/models"
	"yogasund/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Admin content management. All routes behind AdminAuthMiddleware.

// SaveTeacherHandler creates or updates a teacher profile.
func SaveTeacherHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var teacher models.Teacher
		if err := c.ShouldBindJSON(&teacher); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.SaveTeacher(c.Request.Context(), &teacher); err != nil {
			getLogger(c).Error("Failed to save teacher", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save teacher"})
			return
		}
		c.JSON(http.StatusOK, teacher)
	}
}

// DeleteTeacherHandler removes a teacher profile.
func DeleteTeacherHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteTeacher(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete teacher"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// SaveClassStyleHandler creates or updates a class style.
func SaveClassStyleHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var style models.ClassStyle
		if err := c.ShouldBindJSON(&style); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.SaveClassStyle(c.Request.Context(), &style); err != nil {
			getLogger(c).Error("Failed to save class style", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save class style"})
			return
		}
		c.JSON(http.StatusOK, style)
	}
}

// DeleteClassStyleHandler removes a class style.
func DeleteClassStyleHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteClassStyle(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class style"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// SaveArticleHandler creates or updates a wellbeing article.
func SaveArticleHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var article models.WellbeingArticle
		if err := c.ShouldBindJSON(&article); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		if err := svc.SaveArticle(c.Request.Context(), &article); err != nil {
			getLogger(c).Error("Failed to save article", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save article"})
			return
		}
		c.JSON(http.StatusOK, article)
	}
}

// DeleteArticleHandler removes a wellbeing article.
func DeleteArticleHandler(svc content.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteArticle(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
