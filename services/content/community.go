package content

import (
	"context"
	"fmt"

	communityRepo "yogasund/database/repository/community"
	"yogasund/models"

	"github.com/google/uuid"
)

const defaultFeedLimit = 50

// CommunityService manages the member community board.
type CommunityService interface {
	CreatePost(ctx context.Context, member models.Member, body string) (*models.CommunityPost, error)
	ListPosts(ctx context.Context, limit int64) ([]models.CommunityPost, error)
	DeletePost(ctx context.Context, contactID, postID string) error
}

// DefaultCommunityService is the production implementation of CommunityService.
type DefaultCommunityService struct {
	Repo communityRepo.CommunityRepository
}

// CreatePost publishes a post authored by the signed-in member.
func (s *DefaultCommunityService) CreatePost(ctx context.Context, member models.Member, body string) (*models.CommunityPost, error) {
	post := &models.CommunityPost{
		ID:         uuid.New().String(),
		ContactID:  member.ContactID,
		AuthorName: member.FirstName,
		Body:       body,
	}
	if err := s.Repo.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns the most recent posts, newest first.
func (s *DefaultCommunityService) ListPosts(ctx context.Context, limit int64) ([]models.CommunityPost, error) {
	if limit <= 0 || limit > defaultFeedLimit {
		limit = defaultFeedLimit
	}
	return s.Repo.GetRecentPosts(limit)
}

// DeletePost removes a post. Members may only delete their own posts.
func (s *DefaultCommunityService) DeletePost(ctx context.Context, contactID, postID string) error {
	post, err := s.Repo.GetPostByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post %s not found", postID)
	}
	if post.ContactID != contactID {
		return fmt.Errorf("post %s does not belong to this member", postID)
	}
	return s.Repo.DeletePost(postID)
}
