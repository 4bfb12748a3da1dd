// File: database/repository/community/interface.go
package communityRepo

import "yogasund/models"

// CommunityRepository persists member community posts.
type CommunityRepository interface {
	CreatePost(post *models.CommunityPost) error
	GetRecentPosts(limit int64) ([]models.CommunityPost, error)
	GetPostByID(id string) (*models.CommunityPost, error)
	DeletePost(id string) error
}
