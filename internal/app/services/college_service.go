package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/yigit/collegeez/internal/app/models/dto"
	"github.com/yigit/collegeez/internal/pkg/apperrors"
	"github.com/yigit/collegeez/internal/pkg/helpers"
)

// TopCollegeLimit is the size of the top colleges ranking
const TopCollegeLimit = 3

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	GetAllColleges(ctx context.Context) ([]bson.M, error)
	GetCollegeRatings(ctx context.Context) ([]dto.CollegeRatingView, error)
	GetCollegeByID(ctx context.Context, id string) (*dto.CollegeRatingView, error)
	GetTopColleges(ctx context.Context) ([]dto.TopCollegeView, error)
	GetCollegeReviews(ctx context.Context) ([]dto.CollegeReviewsView, error)
	GetResearchPapers(ctx context.Context) ([]dto.ResearchPapersView, error)
	SearchColleges(ctx context.Context, name string) ([]bson.M, error)
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo CollegeStore
}

// NewCollegeService creates a new college service instance
func NewCollegeService(collegeRepo CollegeStore) CollegeService {
	return &collegeServiceImpl{
		collegeRepo: collegeRepo,
	}
}

// GetAllColleges returns the stored college documents unprojected
func (s *collegeServiceImpl) GetAllColleges(ctx context.Context) ([]bson.M, error) {
	colleges, err := s.collegeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return helpers.NonNil(colleges), nil
}

// GetCollegeRatings returns every college with its average rating
func (s *collegeServiceImpl) GetCollegeRatings(ctx context.Context) ([]dto.CollegeRatingView, error) {
	views, err := s.collegeRepo.AverageRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving college ratings: %w", err)
	}
	return helpers.NonNil(views), nil
}

// GetCollegeByID returns one college with its average rating
func (s *collegeServiceImpl) GetCollegeByID(ctx context.Context, id string) (*dto.CollegeRatingView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.ErrInvalidCollegeID
	}

	view, err := s.collegeRepo.RatingByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCollegeNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college %s: %w", id, err)
	}
	return view, nil
}

// GetTopColleges returns the best rated reviewed colleges
func (s *collegeServiceImpl) GetTopColleges(ctx context.Context) ([]dto.TopCollegeView, error) {
	views, err := s.collegeRepo.TopRated(ctx, TopCollegeLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving top colleges: %w", err)
	}
	if len(views) > TopCollegeLimit {
		views = views[:TopCollegeLimit]
	}
	return helpers.NonNil(views), nil
}

// GetCollegeReviews returns the reviews of every reviewed college
func (s *collegeServiceImpl) GetCollegeReviews(ctx context.Context) ([]dto.CollegeReviewsView, error) {
	views, err := s.collegeRepo.Reviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving college reviews: %w", err)
	}
	return helpers.NonNil(views), nil
}

// GetResearchPapers returns the research papers of every college
func (s *collegeServiceImpl) GetResearchPapers(ctx context.Context) ([]dto.ResearchPapersView, error) {
	views, err := s.collegeRepo.ResearchPapers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving research papers: %w", err)
	}
	return helpers.NonNil(views), nil
}

// SearchColleges returns the colleges whose name contains name, ignoring case
func (s *collegeServiceImpl) SearchColleges(ctx context.Context, name string) ([]bson.M, error) {
	colleges, err := s.collegeRepo.SearchByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("error searching colleges: %w", err)
	}
	return helpers.NonNil(colleges), nil
}
