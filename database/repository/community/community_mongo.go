package communityRepo

import (
	"context"
	"fmt"
	"time"

	"yogasund/database"
	"yogasund/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCommunityRepo implements CommunityRepository using MongoDB.
type MongoCommunityRepo struct {
	posts *mongo.Collection
}

// NewMongoCommunityRepo creates a new instance of CommunityRepository using MongoDB.
func NewMongoCommunityRepo() CommunityRepository {
	repo := &MongoCommunityRepo{
		posts: database.MongoClient.Database("yogasund").Collection("community_posts"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCommunityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}
	if _, err := r.posts.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", r.posts.Name(), err)
	}
	return nil
}

// CreatePost inserts a new community post.
func (r *MongoCommunityRepo) CreatePost(post *models.CommunityPost) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	if _, err := r.posts.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create community post: %w", err)
	}
	return nil
}

// GetRecentPosts retrieves the most recent posts, newest first.
func (r *MongoCommunityRepo) GetRecentPosts(limit int64) ([]models.CommunityPost, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.posts.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve community posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.CommunityPost
	for cursor.Next(ctx) {
		var p models.CommunityPost
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode community post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// GetPostByID retrieves one post by its id.
func (r *MongoCommunityRepo) GetPostByID(id string) (*models.CommunityPost, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var post models.CommunityPost
	if err := r.posts.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch community post %s: %w", id, err)
	}
	return &post, nil
}

// DeletePost removes a post by its id.
func (r *MongoCommunityRepo) DeletePost(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.posts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete community post %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
