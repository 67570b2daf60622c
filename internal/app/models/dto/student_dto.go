package dto

import (
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/yigit/collegeez/internal/app/models"
)

// serverOwnedStudentFields are never taken from the request body
var serverOwnedStudentFields = []string{"_id", "email", "createdAt"}

// RegisterStudentRequest is the body of POST /updateUser. Every field in the
// body is kept; only email is required. Any createdAt or _id sent by the
// client is ignored.
type RegisterStudentRequest struct {
	Email  string `json:"email" validate:"required"`
	Fields bson.M `json:"-"`
}

// UnmarshalJSON keeps the whole body in Fields. A non-string email leaves
// Email empty so validation rejects it.
func (r *RegisterStudentRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.Fields = bson.M(fields)
	r.Email, _ = fields["email"].(string)
	return nil
}

// ToModel converts the request to a student document
func (r *RegisterStudentRequest) ToModel() *models.Student {
	profile := bson.M{}
	for k, v := range r.Fields {
		profile[k] = v
	}
	for _, k := range serverOwnedStudentFields {
		delete(profile, k)
	}

	return &models.Student{
		Email:   r.Email,
		Profile: profile,
	}
}

// InsertResult acknowledges a stored document
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged" example:"true"`
	InsertedID   string `json:"insertedId" example:"6530f1c2a4b5c6d7e8f90123"`
}

// StudentResponse is the stored student document with "logo", the image of
// the college it names. logo is omitted when no college carries that name.
type StudentResponse bson.M

// NewStudentResponse builds the lookup response from a stored document
func NewStudentResponse(doc bson.M, logo string) StudentResponse {
	resp := StudentResponse{}
	for k, v := range doc {
		resp[k] = v
	}
	delete(resp, "logo")
	if logo != "" {
		resp["logo"] = logo
	}
	return resp
}
