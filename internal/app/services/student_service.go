package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/collegeez/internal/app/models/dto"
	"github.com/yigit/collegeez/internal/pkg/apperrors"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.InsertResult, error)
	GetStudentByEmail(ctx context.Context, email string) (dto.StudentResponse, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
	now         func() time.Time
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		now:         time.Now,
	}
}

// RegisterStudent stores a new student stamped with the server time.
// The store rejects a duplicate email atomically, so two concurrent
// registrations with one email cannot both succeed.
func (s *studentServiceImpl) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.InsertResult, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}

	student := req.ToModel()
	student.Email = strings.TrimSpace(student.Email)
	student.CreatedAt = s.now().UTC()

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error registering student: %w", err)
	}

	return &dto.InsertResult{
		Acknowledged: true,
		InsertedID:   id.Hex(),
	}, nil
}

// GetStudentByEmail returns the stored student and the logo of the college it names
func (s *studentServiceImpl) GetStudentByEmail(ctx context.Context, email string) (dto.StudentResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.ErrStudentNotFound
	}

	student, logo, err := s.studentRepo.FindWithCollegeLogo(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return dto.NewStudentResponse(student, logo), nil
}
