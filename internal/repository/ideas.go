package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gamespark-labs/gamespark/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ideasCollection = "game_ideas"

type IdeasRepository struct {
	mongoRepo *MongoRepository
}

func NewIdeasRepository(mongoRepo *MongoRepository) *IdeasRepository {
	return &IdeasRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *IdeasRepository) InsertIdea(ctx context.Context, idea *models.GameIdea) error {
	if idea.CreatedAt.IsZero() {
		idea.CreatedAt = time.Now()
	}
	err := r.mongoRepo.InsertOne(ctx, ideasCollection, idea)
	if err != nil {
		return fmt.Errorf("failed to insert idea: %w", err)
	}

	return nil
}

func (r *IdeasRepository) GetIdeaByID(ctx context.Context, id string) (*models.GameIdea, error) {
	filter := bson.M{"_id": id}

	var idea models.GameIdea
	err := r.mongoRepo.FindOne(ctx, ideasCollection, filter).Decode(&idea)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find idea: %w", err)
	}

	return &idea, nil
}

// GetRecentPublicIdeas returns the most recent public ideas, newest first.
func (r *IdeasRepository) GetRecentPublicIdeas(ctx context.Context, limit int) ([]*models.GameIdea, error) {
	filter := bson.M{"is_public": true}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.mongoRepo.FindMany(ctx, ideasCollection, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find ideas: %w", err)
	}
	defer cursor.Close(ctx)

	var ideas []*models.GameIdea
	if err := cursor.All(ctx, &ideas); err != nil {
		return nil, fmt.Errorf("failed to decode ideas: %w", err)
	}

	return ideas, nil
}

// FetchRecent implements uniqueness.CorpusProvider.
func (r *IdeasRepository) FetchRecent(ctx context.Context, limit int) ([]*models.GameIdea, error) {
	return r.GetRecentPublicIdeas(ctx, limit)
}

func (r *IdeasRepository) CountIdeas(ctx context.Context) (int64, error) {
	count, err := r.mongoRepo.CountDocuments(ctx, ideasCollection, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count ideas: %w", err)
	}

	return count, nil
}
