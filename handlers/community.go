package handlers

import (
	"net/http"
	"strconv"

	"yogasund/models"
	"yogasund/services/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListCommunityPostsHandler returns the most recent board posts.
func ListCommunityPostsHandler(svc content.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
		posts, err := svc.ListPosts(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"posts": posts})
	}
}

// CreateCommunityPostHandler publishes a post as the signed-in member.
func CreateCommunityPostHandler(svc content.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Body string `json:"body" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		memberVal, _ := c.Get("member")
		member, ok := memberVal.(models.Member)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Member session required"})
			return
		}

		post, err := svc.CreatePost(c.Request.Context(), member, req.Body)
		if err != nil {
			getLogger(c).Error("Failed to create post", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// DeleteCommunityPostHandler removes one of the member's own posts.
func DeleteCommunityPostHandler(svc content.CommunityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePost(c.Request.Context(), c.GetString("contactID"), c.Param("postID")); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}
