package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stored college fields are passed through with whatever BSON type they have.
// Only the computed fields are typed.

// CollegeRatingView is one row of the average rating view
type CollegeRatingView struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	CollegeName   interface{}        `bson:"collegeName" json:"collegeName" swaggertype:"string"`
	CollegeImage  interface{}        `bson:"collegeImage" json:"collegeImage" swaggertype:"string"`
	AdmissionDate interface{}        `bson:"admissionDate" json:"admissionDate" swaggertype:"string"`
	ResearchCount interface{}        `bson:"researchCount" json:"researchCount" swaggertype:"integer"`
	TotalReviews  int                `bson:"totalReviews" json:"totalReviews"`
	TotalRatings  float64            `bson:"totalRatings" json:"totalRatings"`
	AverageRating float64            `bson:"averageRating" json:"averageRating"`
}

// TopCollegeView is one entry of the top colleges ranking
type TopCollegeView struct {
	ID               primitive.ObjectID `bson:"id" json:"id"`
	CollegeName      interface{}        `bson:"collegeName" json:"collegeName" swaggertype:"string"`
	CollegeImage     interface{}        `bson:"collegeImage" json:"collegeImage" swaggertype:"string"`
	AdmissionDate    interface{}        `bson:"admissionDate" json:"admissionDate" swaggertype:"string"`
	CollegeAvgRating float64            `bson:"collegeAvgRating" json:"collegeAvgRating"`
	TotalReviews     int                `bson:"totalReviews" json:"totalReviews"`
	Events           interface{}        `bson:"events" json:"events" swaggertype:"array,object"`
	ResearchPapers   interface{}        `bson:"researchPapers" json:"researchPapers" swaggertype:"array,object"`
	SportsFacilities interface{}        `bson:"sportsFacilities" json:"sportsFacilities" swaggertype:"array,object"`
}

// CollegeReviewsView groups a college's reviews with its mean rating
type CollegeReviewsView struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	CollegeName   interface{}        `bson:"collegeName" json:"collegeName" swaggertype:"string"`
	Logo          interface{}        `bson:"logo" json:"logo" swaggertype:"string"`
	CollegeRating float64            `bson:"collegeRating" json:"collegeRating"`
	Events        interface{}        `bson:"events" json:"events" swaggertype:"array,object"`
	Reviews       []interface{}      `bson:"reviews" json:"reviews"`
}

// ResearchPapersView lists the research papers of a college
type ResearchPapersView struct {
	ID             primitive.ObjectID `bson:"_id" json:"_id"`
	CollegeName    interface{}        `bson:"collegeName" json:"collegeName" swaggertype:"string"`
	ResearchPapers interface{}        `bson:"researchPapers" json:"researchPapers" swaggertype:"array,object"`
}
