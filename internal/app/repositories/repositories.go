package repositories

import (
	"github.com/yigit/collegeez/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository *CollegeRepository
	StudentRepository *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(mdb *db.MongoDB) *Repositories {
	return &Repositories{
		CollegeRepository: NewCollegeRepository(mdb),
		StudentRepository: NewStudentRepository(mdb),
	}
}
