package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/collegeez/internal/app/models"
	"github.com/yigit/collegeez/internal/app/models/dto"
)

// Services defined in this package:
// - CollegeService: derived college views and name search
// - StudentService: student registration and lookup

// CollegeStore is the college data access the services need.
// *repositories.CollegeRepository implements it.
type CollegeStore interface {
	FindAll(ctx context.Context) ([]bson.M, error)
	SearchByName(ctx context.Context, term string) ([]bson.M, error)
	AverageRatings(ctx context.Context) ([]dto.CollegeRatingView, error)
	RatingByID(ctx context.Context, id string) (*dto.CollegeRatingView, error)
	TopRated(ctx context.Context, limit int) ([]dto.TopCollegeView, error)
	Reviews(ctx context.Context) ([]dto.CollegeReviewsView, error)
	ResearchPapers(ctx context.Context) ([]dto.ResearchPapersView, error)
}

// StudentStore is the student data access the services need.
// *repositories.StudentRepository implements it.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (primitive.ObjectID, error)
	FindWithCollegeLogo(ctx context.Context, email string) (bson.M, string, error)
}
