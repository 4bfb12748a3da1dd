// File: database/repository/content/crud.go
package contentRepo

import (
	"fmt"
	"time"

	"yogasund/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var replaceUpsert = options.Replace().SetUpsert(true)

// UpsertTeacher inserts or replaces a teacher profile.
func (r *MongoContentRepo) UpsertTeacher(teacher *models.Teacher) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if teacher.CreatedAt.IsZero() {
		teacher.CreatedAt = now
	}
	teacher.UpdatedAt = now

	_, err := r.teachers.ReplaceOne(ctx, bson.M{"id": teacher.ID}, teacher, replaceUpsert)
	if err != nil {
		return fmt.Errorf("failed to upsert teacher %s: %w", teacher.ID, err)
	}
	return nil
}

// DeleteTeacher removes a teacher profile by its ID.
func (r *MongoContentRepo) DeleteTeacher(id string) error {
	return deleteByID(r.teachers, "teacher", id)
}

// UpsertClassStyle inserts or replaces a class style.
func (r *MongoContentRepo) UpsertClassStyle(style *models.ClassStyle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if style.CreatedAt.IsZero() {
		style.CreatedAt = now
	}
	style.UpdatedAt = now

	_, err := r.styles.ReplaceOne(ctx, bson.M{"id": style.ID}, style, replaceUpsert)
	if err != nil {
		return fmt.Errorf("failed to upsert class style %s: %w", style.ID, err)
	}
	return nil
}

// DeleteClassStyle removes a class style by its ID.
func (r *MongoContentRepo) DeleteClassStyle(id string) error {
	return deleteByID(r.styles, "class style", id)
}

// UpsertArticle inserts or replaces a wellbeing article.
func (r *MongoContentRepo) UpsertArticle(article *models.WellbeingArticle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	_, err := r.articles.ReplaceOne(ctx, bson.M{"id": article.ID}, article, replaceUpsert)
	if err != nil {
		return fmt.Errorf("failed to upsert article %s: %w", article.ID, err)
	}
	return nil
}

// DeleteArticle removes an article by its ID.
func (r *MongoContentRepo) DeleteArticle(id string) error {
	return deleteByID(r.articles, "article", id)
}

func deleteByID(coll *mongo.Collection, kind, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s with id %s: %w", kind, id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s with id %s not found", kind, id)
	}
	return nil
}
