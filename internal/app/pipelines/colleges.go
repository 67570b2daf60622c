package pipelines

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// reviewCount is the length of the reviews array, 0 when missing or null.
func reviewCount() bson.D {
	return bson.D{{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$reviews", bson.A{}}}}}}
}

// safeAverage divides sumField by countField, yielding 0 when the count is 0.
func safeAverage(sumField, countField string) bson.D {
	return bson.D{{Key: "$cond", Value: bson.D{
		{Key: "if", Value: bson.D{{Key: "$gt", Value: bson.A{countField, 0}}}},
		{Key: "then", Value: bson.D{{Key: "$divide", Value: bson.A{sumField, countField}}}},
		{Key: "else", Value: 0},
	}}}
}

// orEmpty replaces a missing or null array field with [].
func orEmpty(field string) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{field, bson.A{}}}}
}

// ratingStages adds totalReviews and totalRatings, then projects the
// average rating view.
func ratingStages() []bson.D {
	return []bson.D{
		{{Key: "$addFields", Value: bson.D{
			{Key: "totalReviews", Value: reviewCount()},
			{Key: "totalRatings", Value: bson.D{{Key: "$sum", Value: "$reviews.rating"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "collegeName", Value: 1},
			{Key: "collegeImage", Value: 1},
			{Key: "admissionDate", Value: 1},
			{Key: "researchCount", Value: 1},
			{Key: "totalReviews", Value: 1},
			{Key: "totalRatings", Value: 1},
			{Key: "averageRating", Value: safeAverage("$totalRatings", "$totalReviews")},
		}}},
	}
}

// AverageRatingView rates every college, newest first. Colleges without a
// createdAt sort last, in insertion order.
func AverageRatingView() mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	return append(p, ratingStages()...)
}

// SingleCollegeView is AverageRatingView restricted to one college.
func SingleCollegeView(id primitive.ObjectID) mongo.Pipeline {
	p := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$limit", Value: 1}},
	}
	return append(p, ratingStages()...)
}

// TopCollegesView ranks reviewed colleges by mean rating, then by number of
// reviews, and keeps the first limit entries.
func TopCollegesView(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$reviews"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "collegeName", Value: bson.D{{Key: "$first", Value: "$collegeName"}}},
			{Key: "collegeImage", Value: bson.D{{Key: "$first", Value: "$collegeImage"}}},
			{Key: "admissionDate", Value: bson.D{{Key: "$first", Value: "$admissionDate"}}},
			{Key: "events", Value: bson.D{{Key: "$first", Value: "$events"}}},
			{Key: "researchPapers", Value: bson.D{{Key: "$first", Value: "$researchPapers"}}},
			{Key: "sportsFacilities", Value: bson.D{{Key: "$first", Value: "$sportsFacilities"}}},
			{Key: "totalReviews", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalRatings", Value: bson.D{{Key: "$sum", Value: "$reviews.rating"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "id", Value: "$_id"},
			{Key: "collegeName", Value: 1},
			{Key: "collegeImage", Value: 1},
			{Key: "admissionDate", Value: 1},
			{Key: "totalReviews", Value: 1},
			{Key: "collegeAvgRating", Value: safeAverage("$totalRatings", "$totalReviews")},
			{Key: "events", Value: orEmpty("$events")},
			{Key: "researchPapers", Value: orEmpty("$researchPapers")},
			{Key: "sportsFacilities", Value: orEmpty("$sportsFacilities")},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "collegeAvgRating", Value: -1},
			{Key: "totalReviews", Value: -1},
			{Key: "id", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
	}
}

// ReviewsView flattens each reviewed college to its name, logo, mean rating,
// events and full review list.
func ReviewsView() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$reviews"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "collegeName", Value: bson.D{{Key: "$first", Value: "$collegeName"}}},
			{Key: "logo", Value: bson.D{{Key: "$first", Value: "$collegeImage"}}},
			{Key: "events", Value: bson.D{{Key: "$first", Value: "$events"}}},
			{Key: "reviews", Value: bson.D{{Key: "$push", Value: "$reviews"}}},
			{Key: "totalReviews", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalRatings", Value: bson.D{{Key: "$sum", Value: "$reviews.rating"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "collegeName", Value: 1},
			{Key: "logo", Value: 1},
			{Key: "collegeRating", Value: safeAverage("$totalRatings", "$totalReviews")},
			{Key: "events", Value: orEmpty("$events")},
			{Key: "reviews", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "collegeName", Value: 1}, {Key: "_id", Value: 1}}}},
	}
}

// ResearchPapersView lists every college's research papers, reviewed or not.
func ResearchPapersView() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "collegeName", Value: 1},
			{Key: "researchPapers", Value: orEmpty("$researchPapers")},
		}}},
	}
}

// NameContains matches colleges whose name contains term, ignoring case.
// term is matched literally. An empty term matches every college.
func NameContains(term string) bson.D {
	return bson.D{{Key: "collegeName", Value: primitive.Regex{
		Pattern: regexp.QuoteMeta(term),
		Options: "i",
	}}}
}
