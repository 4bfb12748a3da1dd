package content

import (
	"context"

	contentRepo "yogasund/database/repository/content"
	"yogasund/models"
)

// ContentService serves the marketing content catalog: teacher profiles,
// class styles, and wellbeing articles. Reads go through a Redis cache;
// admin writes invalidate it.
type ContentService interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeacher(ctx context.Context, slug string) (*models.Teacher, error)
	ListClassStyles(ctx context.Context) ([]models.ClassStyle, error)
	GetClassStyle(ctx context.Context, slug string) (*models.ClassStyle, error)
	ListArticles(ctx context.Context) ([]models.WellbeingArticle, error)
	GetArticle(ctx context.Context, slug string) (*models.WellbeingArticle, error)

	SaveTeacher(ctx context.Context, teacher *models.Teacher) error
	DeleteTeacher(ctx context.Context, id string) error
	SaveClassStyle(ctx context.Context, style *models.ClassStyle) error
	DeleteClassStyle(ctx context.Context, id string) error
	SaveArticle(ctx context.Context, article *models.WellbeingArticle) error
	DeleteArticle(ctx context.Context, id string) error
}

// DefaultContentService is the production implementation of ContentService.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
}
