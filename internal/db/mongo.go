package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yigit/collegeez/internal/config"
	"github.com/yigit/collegeez/internal/pkg/helpers"
)

// Collection names
const (
	CollegesCollection = "colleges"
	StudentsCollection = "students"
)

// StudentEmailIndex is the unique index on students.email that makes
// registration an atomic insert-or-fail.
const (
	StudentEmailIndex = "email_unique"
	StudentEmailField = "email"
)

// MongoDB holds the process-wide client and the application database.
// The client is a connection pool and is safe for concurrent use.
type MongoDB struct {
	Client       *mongo.Client
	Database     *mongo.Database
	QueryTimeout time.Duration
}

// NewMongoDB connects to MongoDB and verifies the connection with a ping
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	connectTimeout := helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(cfg.Database.StrictAPI).
		SetDeprecationErrors(cfg.Database.StrictAPI)

	clientOpts := options.Client().
		ApplyURI(cfg.GetMongoURI()).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetAppName("collegeez").
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if cfg.Database.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(uint64(cfg.Database.MaxPoolSize))
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &MongoDB{
		Client:       client,
		Database:     client.Database(cfg.Database.Name),
		QueryTimeout: helpers.ParseDuration(cfg.Database.QueryTimeout, 10*time.Second),
	}, nil
}

// Ping checks the primary is reachable within the query timeout
func (db *MongoDB) Ping(ctx context.Context) error {
	ctx, cancel := db.WithTimeout(ctx)
	defer cancel()
	return db.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	return db.Client.Disconnect(ctx)
}

// WithTimeout bounds ctx by the configured query timeout unless ctx already
// carries an earlier deadline.
func (db *MongoDB) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return BoundedContext(ctx, db.QueryTimeout)
}

// BoundedContext applies timeout to ctx unless ctx already has a deadline
// that expires sooner.
func BoundedContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= timeout {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
