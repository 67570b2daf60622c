package pipelines

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StudentWithCollegeLogo fetches the student with the given email and adds
// "logo", the collegeImage of the college whose collegeName equals the
// student's college. logo is left out when no college matches.
func StudentWithCollegeLogo(email, collegesCollection string) mongo.Pipeline {
	nameMatches := bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "$eq", Value: bson.A{bson.D{{Key: "$type", Value: "$$name"}}, "string"}}},
		bson.D{{Key: "$ne", Value: bson.A{"$$name", ""}}},
		bson.D{{Key: "$eq", Value: bson.A{"$collegeName", "$$name"}}},
	}}}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "email", Value: email}}}},
		{{Key: "$limit", Value: 1}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collegesCollection},
			{Key: "let", Value: bson.D{{Key: "name", Value: "$college"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: nameMatches}}}},
				bson.D{{Key: "$limit", Value: 1}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}, {Key: "collegeImage", Value: 1}}}},
			}},
			{Key: "as", Value: "college_match"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "logo", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$college_match.collegeImage", 0}}}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "college_match", Value: 0}}}},
	}
}

// DuplicateValues groups a collection by field and keeps the values held
// by more than one document, most frequent first. Documents missing the
// field group under null.
func DuplicateValues(field string, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "count", Value: bson.D{{Key: "$gt", Value: 1}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
}
