package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/collegeez/internal/app/models"
	"github.com/yigit/collegeez/internal/app/pipelines"
	"github.com/yigit/collegeez/internal/db"
	"github.com/yigit/collegeez/internal/pkg/apperrors"
	"github.com/yigit/collegeez/internal/pkg/dberrors"
	"github.com/yigit/collegeez/internal/pkg/logger"
	"github.com/yigit/collegeez/internal/pkg/metrics"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db   *db.MongoDB
	coll *mongo.Collection
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(mdb *db.MongoDB) *StudentRepository {
	return &StudentRepository{
		db:   mdb,
		coll: mdb.Database.Collection(db.StudentsCollection),
	}
}

// Create inserts a student. A second student with the same email is
// rejected by the unique email index with ErrEmailAlreadyExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (primitive.ObjectID, error) {
	ctx, cancel := r.db.WithTimeout(ctx)
	defer cancel()

	start := time.Now()
	res, err := r.coll.InsertOne(ctx, student)
	if dberrors.IsDuplicateKeyError(err, db.StudentEmailField) {
		metrics.RecordDBOperation("insert", r.coll.Name(), time.Since(start), nil)
		logger.Warn().Str("email", student.Email).Msg("Attempted to register student with duplicate email")
		return primitive.NilObjectID, apperrors.ErrEmailAlreadyExists
	}
	metrics.RecordDBOperation("insert", r.coll.Name(), time.Since(start), err)
	if err != nil {
		logger.Error().Err(err).Str("email", student.Email).Msg("Error inserting student")
		return primitive.NilObjectID, fmt.Errorf("error creating student: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	student.ID = id

	logger.Info().Str("studentID", id.Hex()).Msg("Student registered successfully")
	return id, nil
}

// FindWithCollegeLogo returns the stored student document with the given
// email, every field as stored, and the image of the college it names
// ("" when no college has that name).
func (r *StudentRepository) FindWithCollegeLogo(ctx context.Context, email string) (bson.M, string, error) {
	pipeline := pipelines.StudentWithCollegeLogo(email, db.CollegesCollection)
	rows, err := aggregate[bson.M](ctx, r.db, r.coll, "find_with_college_logo", pipeline)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error looking up student")
		return nil, "", err
	}
	if len(rows) == 0 {
		return nil, "", apperrors.ErrStudentNotFound
	}

	student, logo := splitLogo(rows[0])
	return student, logo, nil
}

// splitLogo removes the looked-up logo from a pipeline row. A logo that is
// not a string is ignored.
func splitLogo(row bson.M) (bson.M, string) {
	logo, _ := row["logo"].(string)
	delete(row, "logo")
	return row, logo
}
