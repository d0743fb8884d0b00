package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostRepository represents the MongoDB implementation of the IPostRepository interface.
type PostRepository struct {
	collection *mongo.Collection
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection("posts"),
	}
}

// CreatePost inserts a new post document.
func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, id string) (*entity.Post, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *PostRepository) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

// GetPosts retrieves posts newest first. A pageSize of zero returns every post.
func (r *PostRepository) GetPosts(ctx context.Context, page, pageSize int) ([]*entity.Post, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}})
	if pageSize > 0 {
		offset, ok := utils.PageOffset(page, pageSize)
		if !ok || offset >= total {
			return []*entity.Post{}, total, nil
		}
		opts.SetSkip(offset).SetLimit(int64(pageSize))
	}
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find posts: %w", err)
	}
	defer cursor.Close(ctx)

	posts := []*entity.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, total, nil
}

// IncrementViewCount bumps the view counter of the post with slug.
func (r *PostRepository) IncrementViewCount(ctx context.Context, slug string) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"slug": slug}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment post views: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) CountPosts(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return n, nil
}

func (r *PostRepository) SumViews(ctx context.Context) (int64, error) {
	return sumField(ctx, r.collection, "views")
}

func (r *PostRepository) findOne(ctx context.Context, filter bson.M) (*entity.Post, error) {
	var post entity.Post
	if err := r.collection.FindOne(ctx, filter).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return &post, nil
}
