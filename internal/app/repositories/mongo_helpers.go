package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yigit/collegeez/internal/db"
	"github.com/yigit/collegeez/internal/pkg/metrics"
)

// aggregate runs pipeline against coll under the query timeout and decodes
// every result into T. An empty result is an empty, non-nil slice.
func aggregate[T any](ctx context.Context, mdb *db.MongoDB, coll *mongo.Collection, operation string, pipeline mongo.Pipeline) ([]T, error) {
	ctx, cancel := mdb.WithTimeout(ctx)
	defer cancel()

	start := time.Now()
	results := make([]T, 0)

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err == nil {
		err = cursor.All(ctx, &results)
	}
	metrics.RecordDBOperation(operation, coll.Name(), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", operation, coll.Name(), err)
	}

	return results, nil
}

// find runs filter against coll under the query timeout and decodes every
// document into T.
func find[T any](ctx context.Context, mdb *db.MongoDB, coll *mongo.Collection, operation string, filter interface{}) ([]T, error) {
	ctx, cancel := mdb.WithTimeout(ctx)
	defer cancel()

	start := time.Now()
	results := make([]T, 0)

	cursor, err := coll.Find(ctx, filter)
	if err == nil {
		err = cursor.All(ctx, &results)
	}
	metrics.RecordDBOperation(operation, coll.Name(), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", operation, coll.Name(), err)
	}

	return results, nil
}
