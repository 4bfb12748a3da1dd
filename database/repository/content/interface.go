package contentRepo

import (
	"yogasund/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ContentRepository defines data access for the studio's editorial content:
// teacher profiles, class styles and wellbeing articles.
type ContentRepository interface {
	// GetTeachers retrieves teacher profiles, active ones only when
	// activeOnly is set.
	GetTeachers(activeOnly bool) ([]models.Teacher, error)
	// GetTeacherBySlug retrieves one teacher profile by its URL slug.
	GetTeacherBySlug(slug string) (*models.Teacher, error)
	// UpsertTeacher inserts or replaces a teacher profile.
	UpsertTeacher(teacher *models.Teacher) error
	// DeleteTeacher removes a teacher profile by its ID.
	DeleteTeacher(id string) error

	// GetClassStyles retrieves all class style descriptions.
	GetClassStyles() ([]models.ClassStyle, error)
	// GetClassStyleBySlug retrieves one class style by its URL slug.
	GetClassStyleBySlug(slug string) (*models.ClassStyle, error)
	// UpsertClassStyle inserts or replaces a class style.
	UpsertClassStyle(style *models.ClassStyle) error
	// DeleteClassStyle removes a class style by its ID.
	DeleteClassStyle(id string) error

	// GetArticles retrieves wellbeing articles, published ones only when
	// publishedOnly is set.
	GetArticles(publishedOnly bool) ([]models.WellbeingArticle, error)
	// GetArticleBySlug retrieves one article by its URL slug.
	GetArticleBySlug(slug string) (*models.WellbeingArticle, error)
	// UpsertArticle inserts or replaces a wellbeing article.
	UpsertArticle(article *models.WellbeingArticle) error
	// DeleteArticle removes an article by its ID.
	DeleteArticle(id string) error

	// GetArticlesWithFilter retrieves articles matching an arbitrary filter.
	GetArticlesWithFilter(filter bson.M) ([]models.WellbeingArticle, error)
}
