// File: database/repository/content/queries.go
package contentRepo

import (
	"fmt"
	"time"

	"yogasund/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetTeachers retrieves teacher profiles, active ones only when activeOnly is set.
func (r *MongoContentRepo) GetTeachers(activeOnly bool) ([]models.Teacher, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.teachers.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve teachers: %w", err)
	}
	defer cursor.Close(ctx)

	var teachers []models.Teacher
	for cursor.Next(ctx) {
		var t models.Teacher
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode teacher: %w", err)
		}
		teachers = append(teachers, t)
	}
	return teachers, nil
}

// GetTeacherBySlug retrieves one teacher profile by its URL slug.
func (r *MongoContentRepo) GetTeacherBySlug(slug string) (*models.Teacher, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var teacher models.Teacher
	if err := r.teachers.FindOne(ctx, bson.M{"slug": slug}).Decode(&teacher); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch teacher with slug %s: %w", slug, err)
	}
	return &teacher, nil
}

// GetClassStyles retrieves all class style descriptions.
func (r *MongoContentRepo) GetClassStyles() ([]models.ClassStyle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.styles.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve class styles: %w", err)
	}
	defer cursor.Close(ctx)

	var styles []models.ClassStyle
	for cursor.Next(ctx) {
		var s models.ClassStyle
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode class style: %w", err)
		}
		styles = append(styles, s)
	}
	return styles, nil
}

// GetClassStyleBySlug retrieves one class style by its URL slug.
func (r *MongoContentRepo) GetClassStyleBySlug(slug string) (*models.ClassStyle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var style models.ClassStyle
	if err := r.styles.FindOne(ctx, bson.M{"slug": slug}).Decode(&style); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch class style with slug %s: %w", slug, err)
	}
	return &style, nil
}

// GetArticles retrieves wellbeing articles, published ones only when publishedOnly is set.
func (r *MongoContentRepo) GetArticles(publishedOnly bool) ([]models.WellbeingArticle, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["published"] = true
	}
	return r.GetArticlesWithFilter(filter)
}

// GetArticlesWithFilter retrieves articles matching an arbitrary filter.
func (r *MongoContentRepo) GetArticlesWithFilter(filter bson.M) ([]models.WellbeingArticle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.articles.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []models.WellbeingArticle
	for cursor.Next(ctx) {
		var a models.WellbeingArticle
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// GetArticleBySlug retrieves one article by its URL slug.
func (r *MongoContentRepo) GetArticleBySlug(slug string) (*models.WellbeingArticle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var article models.WellbeingArticle
	if err := r.articles.FindOne(ctx, bson.M{"slug": slug}).Decode(&article); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch article with slug %s: %w", slug, err)
	}
	return &article, nil
}
