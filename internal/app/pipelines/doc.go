// Package pipelines builds the MongoDB aggregation pipelines that derive the
// read-only college views (average rating, top ranking, flattened reviews,
// research papers) from the embedded-array college document.
//
// Ratings are always computed as totalRatings/totalReviews behind a $cond
// guard, so a college without reviews rates 0 instead of NaN or a server
// error. The ranking and reviews views group on an $unwind of the reviews
// array; a college with no reviews produces no unwound row and therefore
// never appears in them.
package pipelines
