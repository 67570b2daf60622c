package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	appModels "github.com/yigit/collegeez/internal/app/models"
)

// CollegeSeeder is the college storage the seeder writes to
type CollegeSeeder interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, colleges []appModels.College) error
}

// CreateDefaultData inserts the sample colleges when the collection is empty.
// A populated collection is left untouched.
func CreateDefaultData(ctx context.Context, colleges CollegeSeeder, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Colleges)...")

	count, err := colleges.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting colleges: %w", err)
	}
	if count > 0 {
		lgr.Info().Int64("count", count).Msg("Colleges already present, skipping seed")
		return nil
	}

	samples := DefaultColleges(time.Now().UTC())
	if err := colleges.InsertMany(ctx, samples); err != nil {
		return fmt.Errorf("error seeding colleges: %w", err)
	}

	lgr.Info().Int("count", len(samples)).Msg("Default colleges created")
	return nil
}

// DefaultColleges returns the sample colleges, newest first by createdAt
func DefaultColleges(now time.Time) []appModels.College {
	stamp := func(daysAgo int) *time.Time {
		t := now.AddDate(0, 0, -daysAgo)
		return &t
	}

	return []appModels.College{
		{
			CollegeName:   "Tech Institute",
			CollegeImage:  "https://images.collegeez.example/tech-institute.png",
			AdmissionDate: "2026-09-01",
			ResearchCount: 2,
			Events: []bson.M{
				{"name": "Hackathon", "date": "2026-11-14"},
				{"name": "Robotics Expo", "date": "2027-02-20"},
			},
			ResearchPapers: []bson.M{
				{"title": "Low-latency consensus", "author": "R. Patel"},
				{"title": "Sparse indexes at scale", "author": "L. Chen"},
			},
			SportsFacilities: []bson.M{{"name": "Climbing wall"}, {"name": "Indoor track"}},
			Reviews: []appModels.Review{
				{ReviewerName: "Maya", Comment: "Great labs.", Rating: 5},
				{ReviewerName: "Omar", Comment: "Heavy workload.", Rating: 3},
				{ReviewerName: "Jin", Comment: "Helpful faculty.", Rating: 4},
			},
			CreatedAt: stamp(1),
		},
		{
			CollegeName:   "Riverside Arts College",
			CollegeImage:  "https://images.collegeez.example/riverside-arts.png",
			AdmissionDate: "2026-08-15",
			ResearchCount: 1,
			Events:        []bson.M{{"name": "Spring Exhibition", "date": "2027-04-03"}},
			ResearchPapers: []bson.M{
				{"title": "Color theory in public spaces", "author": "A. Ruiz"},
			},
			SportsFacilities: []bson.M{{"name": "Dance studio"}},
			Reviews: []appModels.Review{
				{ReviewerName: "Sofia", Comment: "Inspiring campus.", Rating: 5},
				{ReviewerName: "Liam", Comment: "Small library.", Rating: 4},
			},
			CreatedAt: stamp(2),
		},
		{
			CollegeName:      "Harbor Business School",
			CollegeImage:     "https://images.collegeez.example/harbor-business.png",
			AdmissionDate:    "2026-10-01",
			ResearchCount:    0,
			Events:           []bson.M{{"name": "Startup Pitch Night", "date": "2026-12-05"}},
			ResearchPapers:   []bson.M{},
			SportsFacilities: []bson.M{{"name": "Rowing club"}},
			Reviews: []appModels.Review{
				{ReviewerName: "Noah", Comment: "Good network.", Rating: 4},
				{ReviewerName: "Ava", Comment: "Expensive.", Rating: 2},
			},
			CreatedAt: stamp(3),
		},
		{
			CollegeName:      "Medical College",
			CollegeImage:     "https://images.collegeez.example/medical-college.png",
			AdmissionDate:    "2026-07-20",
			ResearchCount:    1,
			Events:           []bson.M{},
			ResearchPapers:   []bson.M{{"title": "Early sepsis markers", "author": "K. Osei"}},
			SportsFacilities: []bson.M{},
			Reviews:          []appModels.Review{},
			CreatedAt:        stamp(4),
		},
	}
}
