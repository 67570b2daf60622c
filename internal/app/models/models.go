// Package models defines the documents stored in the colleges and students
// collections.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// College is a document in the colleges collection. Events, research papers
// and sports facilities are opaque embedded records; reviews carry a rating.
type College struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CollegeName      string             `bson:"collegeName" json:"collegeName"`
	CollegeImage     string             `bson:"collegeImage" json:"collegeImage"`
	AdmissionDate    string             `bson:"admissionDate" json:"admissionDate"`
	ResearchCount    int                `bson:"researchCount" json:"researchCount"`
	Events           []bson.M           `bson:"events" json:"events"`
	ResearchPapers   []bson.M           `bson:"researchPapers" json:"researchPapers"`
	SportsFacilities []bson.M           `bson:"sportsFacilities" json:"sportsFacilities"`
	Reviews          []Review           `bson:"reviews" json:"reviews"`
	CreatedAt        *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// Review is embedded in College.Reviews
type Review struct {
	ReviewerName  string  `bson:"reviewerName,omitempty" json:"reviewerName,omitempty"`
	ReviewerImage string  `bson:"reviewerImage,omitempty" json:"reviewerImage,omitempty"`
	Comment       string  `bson:"comment,omitempty" json:"comment,omitempty"`
	Rating        float64 `bson:"rating" json:"rating"`
}
