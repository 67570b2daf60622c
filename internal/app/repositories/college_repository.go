package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/collegeez/internal/app/models"
	"github.com/yigit/collegeez/internal/app/models/dto"
	"github.com/yigit/collegeez/internal/app/pipelines"
	"github.com/yigit/collegeez/internal/db"
	"github.com/yigit/collegeez/internal/pkg/apperrors"
	"github.com/yigit/collegeez/internal/pkg/logger"
	"github.com/yigit/collegeez/internal/pkg/metrics"
)

// CollegeRepository handles college database operations
type CollegeRepository struct {
	db   *db.MongoDB
	coll *mongo.Collection
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(mdb *db.MongoDB) *CollegeRepository {
	return &CollegeRepository{
		db:   mdb,
		coll: mdb.Database.Collection(db.CollegesCollection),
	}
}

// FindAll returns every college document as stored
func (r *CollegeRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	colleges, err := find[bson.M](ctx, r.db, r.coll, "find_all", bson.D{})
	if err != nil {
		logger.Error().Err(err).Msg("Error finding all colleges")
		return nil, err
	}
	return colleges, nil
}

// SearchByName returns the full documents of colleges whose name contains term, ignoring case
func (r *CollegeRepository) SearchByName(ctx context.Context, term string) ([]bson.M, error) {
	colleges, err := find[bson.M](ctx, r.db, r.coll, "search_by_name", pipelines.NameContains(term))
	if err != nil {
		logger.Error().Err(err).Str("term", term).Msg("Error searching colleges by name")
		return nil, err
	}
	return colleges, nil
}

// AverageRatings returns the average rating view for every college
func (r *CollegeRepository) AverageRatings(ctx context.Context) ([]dto.CollegeRatingView, error) {
	views, err := aggregate[dto.CollegeRatingView](ctx, r.db, r.coll, "average_ratings", pipelines.AverageRatingView())
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating college ratings")
		return nil, err
	}
	return views, nil
}

// RatingByID returns the average rating view of one college
func (r *CollegeRepository) RatingByID(ctx context.Context, id string) (*dto.CollegeRatingView, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidCollegeID, id)
	}

	views, err := aggregate[dto.CollegeRatingView](ctx, r.db, r.coll, "rating_by_id", pipelines.SingleCollegeView(oid))
	if err != nil {
		logger.Error().Err(err).Str("collegeID", id).Msg("Error aggregating college rating")
		return nil, err
	}
	if len(views) == 0 {
		return nil, apperrors.ErrCollegeNotFound
	}
	return &views[0], nil
}

// TopRated returns at most limit reviewed colleges, best rated first
func (r *CollegeRepository) TopRated(ctx context.Context, limit int) ([]dto.TopCollegeView, error) {
	views, err := aggregate[dto.TopCollegeView](ctx, r.db, r.coll, "top_rated", pipelines.TopCollegesView(limit))
	if err != nil {
		logger.Error().Err(err).Int("limit", limit).Msg("Error aggregating top colleges")
		return nil, err
	}
	return views, nil
}

// Reviews returns the flattened reviews view of every reviewed college
func (r *CollegeRepository) Reviews(ctx context.Context) ([]dto.CollegeReviewsView, error) {
	views, err := aggregate[dto.CollegeReviewsView](ctx, r.db, r.coll, "reviews", pipelines.ReviewsView())
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating college reviews")
		return nil, err
	}
	return views, nil
}

// ResearchPapers returns the research papers of every college
func (r *CollegeRepository) ResearchPapers(ctx context.Context) ([]dto.ResearchPapersView, error) {
	views, err := aggregate[dto.ResearchPapersView](ctx, r.db, r.coll, "research_papers", pipelines.ResearchPapersView())
	if err != nil {
		logger.Error().Err(err).Msg("Error aggregating research papers")
		return nil, err
	}
	return views, nil
}

// Count returns the number of stored colleges
func (r *CollegeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	start := time.Now()
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	metrics.RecordDBOperation("count", r.coll.Name(), time.Since(start), err)
	if err != nil {
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}
	return n, nil
}

// InsertMany stores the given colleges
func (r *CollegeRepository) InsertMany(ctx context.Context, colleges []models.College) error {
	if len(colleges) == 0 {
		return nil
	}

	docs := make([]interface{}, len(colleges))
	for i := range colleges {
		docs[i] = colleges[i]
	}

	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	start := time.Now()
	_, err := r.coll.InsertMany(ctx, docs)
	metrics.RecordDBOperation("insert_many", r.coll.Name(), time.Since(start), err)
	if err != nil {
		logger.Error().Err(err).Int("count", len(colleges)).Msg("Error inserting colleges")
		return fmt.Errorf("error inserting colleges: %w", err)
	}
	return nil
}
