package services

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/collegeez/internal/app/models"
	"github.com/yigit/collegeez/internal/app/models/dto"
	"github.com/yigit/collegeez/internal/pkg/apperrors"
)

// fakeCollegeStore returns canned results; err, when set, is returned by every call.
type fakeCollegeStore struct {
	all       []bson.M
	ratings   []dto.CollegeRatingView
	byID      map[string]*dto.CollegeRatingView
	top       []dto.TopCollegeView
	reviews   []dto.CollegeReviewsView
	papers    []dto.ResearchPapersView
	err       error
	lastLimit int
	lastTerm  string
}

func (f *fakeCollegeStore) FindAll(context.Context) ([]bson.M, error) { return f.all, f.err }

func (f *fakeCollegeStore) SearchByName(_ context.Context, term string) ([]bson.M, error) {
	f.lastTerm = term
	return f.all, f.err
}

func (f *fakeCollegeStore) AverageRatings(context.Context) ([]dto.CollegeRatingView, error) {
	return f.ratings, f.err
}

func (f *fakeCollegeStore) RatingByID(_ context.Context, id string) (*dto.CollegeRatingView, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.byID[id]; ok {
		return v, nil
	}
	return nil, apperrors.ErrCollegeNotFound
}

func (f *fakeCollegeStore) TopRated(_ context.Context, limit int) ([]dto.TopCollegeView, error) {
	f.lastLimit = limit
	return f.top, f.err
}

func (f *fakeCollegeStore) Reviews(context.Context) ([]dto.CollegeReviewsView, error) {
	return f.reviews, f.err
}

func (f *fakeCollegeStore) ResearchPapers(context.Context) ([]dto.ResearchPapersView, error) {
	return f.papers, f.err
}

// fakeStudentStore enforces email uniqueness like the unique index does and
// keeps documents the way MongoDB returns them: profile fields flattened.
type fakeStudentStore struct {
	mu       sync.Mutex
	students map[string]bson.M
	logos    map[string]string
	err      error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[string]bson.M{}, logos: map[string]string{}}
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	if _, exists := f.students[s.Email]; exists {
		return primitive.NilObjectID, apperrors.ErrEmailAlreadyExists
	}
	s.ID = primitive.NewObjectID()

	doc := bson.M{}
	for k, v := range s.Profile {
		doc[k] = v
	}
	doc["_id"] = s.ID
	doc["email"] = s.Email
	doc["createdAt"] = s.CreatedAt
	f.students[s.Email] = doc
	return s.ID, nil
}

func (f *fakeStudentStore) FindWithCollegeLogo(_ context.Context, email string) (bson.M, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, "", f.err
	}
	doc, ok := f.students[email]
	if !ok {
		return nil, "", apperrors.ErrStudentNotFound
	}
	copied := bson.M{}
	for k, v := range doc {
		copied[k] = v
	}
	college, _ := doc["college"].(string)
	return copied, f.logos[college], nil
}

func (f *fakeStudentStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.students)
}
