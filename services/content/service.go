package content

import (
	"context"
	"encoding/json"
	"strings"

	"yogasund/models"
	"yogasund/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	teachersCacheKey = "content:teachers"
	stylesCacheKey   = "content:styles"
	articlesCacheKey = "content:articles"
)

// ListTeachers returns active teacher profiles, cached.
func (s *DefaultContentService) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if cacheGet(ctx, teachersCacheKey, &teachers) {
		return teachers, nil
	}
	teachers, err := s.Repo.GetTeachers(true)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, teachersCacheKey, teachers)
	return teachers, nil
}

// GetTeacher returns one teacher profile by slug, or nil when absent.
func (s *DefaultContentService) GetTeacher(ctx context.Context, slug string) (*models.Teacher, error) {
	return s.Repo.GetTeacherBySlug(slug)
}

// ListClassStyles returns all class style descriptions, cached.
func (s *DefaultContentService) ListClassStyles(ctx context.Context) ([]models.ClassStyle, error) {
	var styles []models.ClassStyle
	if cacheGet(ctx, stylesCacheKey, &styles) {
		return styles, nil
	}
	styles, err := s.Repo.GetClassStyles()
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, stylesCacheKey, styles)
	return styles, nil
}

// GetClassStyle returns one class style by slug, or nil when absent.
func (s *DefaultContentService) GetClassStyle(ctx context.Context, slug string) (*models.ClassStyle, error) {
	return s.Repo.GetClassStyleBySlug(slug)
}

// ListArticles returns published wellbeing articles, newest first, cached.
func (s *DefaultContentService) ListArticles(ctx context.Context) ([]models.WellbeingArticle, error) {
	var articles []models.WellbeingArticle
	if cacheGet(ctx, articlesCacheKey, &articles) {
		return articles, nil
	}
	articles, err := s.Repo.GetArticles(true)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, articlesCacheKey, articles)
	return articles, nil
}

// GetArticle returns one article by slug, or nil when absent.
func (s *DefaultContentService) GetArticle(ctx context.Context, slug string) (*models.WellbeingArticle, error) {
	return s.Repo.GetArticleBySlug(slug)
}

// SaveTeacher creates or updates a teacher profile.
func (s *DefaultContentService) SaveTeacher(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == "" {
		teacher.ID = uuid.New().String()
	}
	if teacher.Slug == "" {
		teacher.Slug = Slugify(teacher.Name)
	}
	if err := s.Repo.UpsertTeacher(teacher); err != nil {
		return err
	}
	cacheInvalidate(ctx, teachersCacheKey)
	return nil
}

// DeleteTeacher removes a teacher profile.
func (s *DefaultContentService) DeleteTeacher(ctx context.Context, id string) error {
	if err := s.Repo.DeleteTeacher(id); err != nil {
		return err
	}
	cacheInvalidate(ctx, teachersCacheKey)
	return nil
}

// SaveClassStyle creates or updates a class style.
func (s *DefaultContentService) SaveClassStyle(ctx context.Context, style *models.ClassStyle) error {
	if style.ID == "" {
		style.ID = uuid.New().String()
	}
	if style.Slug == "" {
		style.Slug = Slugify(style.Name)
	}
	if err := s.Repo.UpsertClassStyle(style); err != nil {
		return err
	}
	cacheInvalidate(ctx, stylesCacheKey)
	return nil
}

// DeleteClassStyle removes a class style.
func (s *DefaultContentService) DeleteClassStyle(ctx context.Context, id string) error {
	if err := s.Repo.DeleteClassStyle(id); err != nil {
		return err
	}
	cacheInvalidate(ctx, stylesCacheKey)
	return nil
}

// SaveArticle creates or updates a wellbeing article.
func (s *DefaultContentService) SaveArticle(ctx context.Context, article *models.WellbeingArticle) error {
	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}
	if err := s.Repo.UpsertArticle(article); err != nil {
		return err
	}
	cacheInvalidate(ctx, articlesCacheKey)
	return nil
}

// DeleteArticle removes a wellbeing article.
func (s *DefaultContentService) DeleteArticle(ctx context.Context, id string) error {
	if err := s.Repo.DeleteArticle(id); err != nil {
		return err
	}
	cacheInvalidate(ctx, articlesCacheKey)
	return nil
}

// Slugify turns a display name into a lowercase URL slug.
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == 'å', r == 'ä':
			b.WriteRune('a')
			lastDash = false
		case r == 'ö':
			b.WriteRune('o')
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func cacheGet(ctx context.Context, key string, out interface{}) bool {
	data, err := utils.GetCacheClient().Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

func cacheSet(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := utils.GetCacheClient().Set(ctx, key, data, utils.ContentCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to cache content listing", zap.String("key", key), zap.Error(err))
	}
}

func cacheInvalidate(ctx context.Context, key string) {
	if err := utils.GetCacheClient().Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate content cache", zap.String("key", key), zap.Error(err))
	}
}
