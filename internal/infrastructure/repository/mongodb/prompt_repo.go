package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PromptRepository represents the MongoDB implementation of the IPromptRepository interface.
type PromptRepository struct {
	collection *mongo.Collection
}

var _ contract.IPromptRepository = (*PromptRepository)(nil)

// NewPromptRepository creates and returns a new PromptRepository instance.
func NewPromptRepository(db *mongo.Database) *PromptRepository {
	return &PromptRepository{
		collection: db.Collection("prompts"),
	}
}

// buildPromptFilterAndSort creates a BSON filter and sort document based on PromptFilterOptions.
func buildPromptFilterAndSort(opts *contract.PromptFilterOptions) (bson.M, bson.D) {
	filter := bson.M{}

	if opts.Search != "" {
		pattern := primitiveRegex(opts.Search)
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"prompt_text": pattern},
		}
	}
	if len(opts.Categories) > 0 {
		filter["category"] = bson.M{"$in": opts.Categories}
	}
	if opts.Level != "" {
		filter["level"] = opts.Level
	}
	if len(opts.Languages) > 0 {
		filter["language"] = bson.M{"$in": opts.Languages}
	}

	var sort bson.D
	switch opts.SortBy {
	case contract.PromptSortOldest:
		sort = bson.D{{Key: "created_at", Value: 1}}
	case contract.PromptSortAlphabetical:
		sort = bson.D{{Key: "title", Value: 1}}
	default:
		sort = bson.D{{Key: "created_at", Value: -1}}
	}
	return filter, sort
}

// primitiveRegex builds a case-insensitive substring match for user input.
func primitiveRegex(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

// CreatePrompt inserts a new prompt document.
func (r *PromptRepository) CreatePrompt(ctx context.Context, prompt *entity.Prompt) error {
	if prompt.Tags == nil {
		prompt.Tags = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, prompt); err != nil {
		return fmt.Errorf("failed to create prompt: %w", err)
	}
	return nil
}

// GetPromptByID retrieves a single prompt by its id.
func (r *PromptRepository) GetPromptByID(ctx context.Context, id string) (*entity.Prompt, error) {
	var prompt entity.Prompt
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&prompt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPromptNotFound
		}
		return nil, fmt.Errorf("failed to retrieve prompt: %w", err)
	}
	return &prompt, nil
}

// GetPromptsByIDs retrieves the prompts whose ids are listed. Unknown ids are skipped.
func (r *PromptRepository) GetPromptsByIDs(ctx context.Context, ids []string) ([]*entity.Prompt, error) {
	if len(ids) == 0 {
		return []*entity.Prompt{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

// GetPrompts retrieves a filtered, sorted page of prompts and the total match count.
// A PageSize of zero returns every match.
func (r *PromptRepository) GetPrompts(ctx context.Context, opts *contract.PromptFilterOptions) ([]*entity.Prompt, int64, error) {
	filter, sort := buildPromptFilterAndSort(opts)

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count prompts: %w", err)
	}

	findOpts := options.Find().SetSort(sort)
	if opts.PageSize > 0 {
		offset, ok := utils.PageOffset(opts.Page, opts.PageSize)
		if !ok || offset >= total {
			return []*entity.Prompt{}, total, nil
		}
		findOpts.SetSkip(offset).SetLimit(int64(opts.PageSize))
	}
	if opts.SortBy == contract.PromptSortAlphabetical {
		findOpts.SetCollation(&options.Collation{Locale: "ar"})
	}

	prompts, err := r.find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	return prompts, total, nil
}

// GetPromptsByCategory retrieves every prompt in a category.
func (r *PromptRepository) GetPromptsByCategory(ctx context.Context, category entity.PromptCategory) ([]*entity.Prompt, error) {
	return r.find(ctx, bson.M{"category": category}, options.Find())
}

// SlugExists reports whether any prompt already uses slug.
func (r *PromptRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return n > 0, nil
}

// SetVerified updates the verification flag and returns the updated prompt.
func (r *PromptRepository) SetVerified(ctx context.Context, id string, verified bool) (*entity.Prompt, error) {
	var prompt entity.Prompt
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"verified": verified}}, opts).Decode(&prompt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPromptNotFound
		}
		return nil, fmt.Errorf("failed to update prompt verification: %w", err)
	}
	return &prompt, nil
}

// DeletePrompt removes a prompt by id.
func (r *PromptRepository) DeletePrompt(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrPromptNotFound
	}
	return nil
}

func (r *PromptRepository) CountPrompts(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count prompts: %w", err)
	}
	return n, nil
}

// SumLikes adds up the like aggregate over all prompts.
func (r *PromptRepository) SumLikes(ctx context.Context) (int64, error) {
	return sumField(ctx, r.collection, "likes")
}

func (r *PromptRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*entity.Prompt, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find prompts: %w", err)
	}
	defer cursor.Close(ctx)

	prompts := []*entity.Prompt{}
	if err := cursor.All(ctx, &prompts); err != nil {
		return nil, fmt.Errorf("failed to decode prompts: %w", err)
	}
	return prompts, nil
}

// sumField runs a $group aggregation summing an integer field.
func sumField(ctx context.Context, coll *mongo.Collection, field string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$" + field}}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to sum %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var out []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &out); err != nil {
		return 0, fmt.Errorf("failed to decode %s sum: %w", field, err)
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Total, nil
}
