package migrations

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/collegeez/internal/app/pipelines"
	"github.com/yigit/collegeez/internal/db"
	"github.com/yigit/collegeez/internal/pkg/dberrors"
	"github.com/yigit/collegeez/internal/pkg/logger"
)

// migrationsCollection records the applied migration versions
const migrationsCollection = "schema_migrations"

// maxReportedDuplicates caps the values listed when a unique index cannot be built
const maxReportedDuplicates = 10

// Migration creates one index on one collection
type Migration struct {
	Version     string
	Description string
	Collection  string
	Index       mongo.IndexModel
}

// Migrations returns the index migrations in the order they are applied
func Migrations() []Migration {
	migrations := []Migration{
		{
			Version:     "001",
			Description: "unique student email",
			Collection:  db.StudentsCollection,
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: db.StudentEmailField, Value: 1}},
				Options: options.Index().SetName(db.StudentEmailIndex).SetUnique(true),
			},
		},
		{
			Version:     "002",
			Description: "college name lookup",
			Collection:  db.CollegesCollection,
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "collegeName", Value: 1}},
				Options: options.Index().SetName("collegeName_idx"),
			},
		},
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations
}

// Migrator applies index migrations
type Migrator struct {
	db *mongo.Database
}

// NewMigrator creates a new migrator
func NewMigrator(database *mongo.Database) *Migrator {
	return &Migrator{
		db: database,
	}
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	err := m.db.Collection(migrationsCollection).FindOne(ctx, bson.D{{Key: "_id", Value: version}}).Err()
	if dberrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return true, nil
}

// recordMigration marks a migration as applied
func (m *Migrator) recordMigration(ctx context.Context, migration Migration) error {
	_, err := m.db.Collection(migrationsCollection).InsertOne(ctx, bson.D{
		{Key: "_id", Value: migration.Version},
		{Key: "description", Value: migration.Description},
		{Key: "appliedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return nil
}

// Apply creates the index of one migration unless it was applied before.
// Creating an index that already exists with the same definition is a no-op.
func (m *Migrator) Apply(ctx context.Context, migration Migration) error {
	applied, err := m.isMigrationApplied(ctx, migration.Version)
	if err != nil {
		return err
	}
	if applied {
		logger.Debug().Str("version", migration.Version).Msg("Migration already applied, skipping")
		return nil
	}

	name, err := m.db.Collection(migration.Collection).Indexes().CreateOne(ctx, migration.Index)
	switch {
	case err == nil:
	case dberrors.IsIndexConflict(err):
		existing, findErr := m.equivalentIndex(ctx, migration)
		if findErr != nil {
			return fmt.Errorf("migration %s (%s) failed: %w", migration.Version, migration.Description, findErr)
		}
		if existing == "" {
			return fmt.Errorf("migration %s (%s) failed: an index on %s.%v already exists with different options, drop it and restart: %w",
				migration.Version, migration.Description, migration.Collection, indexKeys(migration), err)
		}
		logger.Warn().Str("version", migration.Version).Str("index", existing).Str("collection", migration.Collection).
			Msg("Equivalent index already exists under another name, reusing it")
		name = existing
	case dberrors.IsDuplicateKeyError(err, ""):
		values, findErr := m.duplicateValues(ctx, migration)
		if findErr != nil {
			return fmt.Errorf("migration %s (%s) failed: %w", migration.Version, migration.Description, findErr)
		}
		logger.Error().Str("version", migration.Version).Str("collection", migration.Collection).
			Interface("duplicates", values).Msg("Unique index cannot be built over duplicate values")
		return fmt.Errorf("migration %s (%s) failed: %s holds duplicate %v values %v, remove or merge those documents and restart: %w",
			migration.Version, migration.Description, migration.Collection, indexKeys(migration), values, err)
	default:
		return fmt.Errorf("migration %s (%s) failed: %w", migration.Version, migration.Description, err)
	}

	if err := m.recordMigration(ctx, migration); err != nil {
		return err
	}

	logger.Info().Str("version", migration.Version).Str("index", name).Str("collection", migration.Collection).Msg("Migration applied")
	return nil
}

// MigrateAll applies every migration in order
func (m *Migrator) MigrateAll(ctx context.Context) error {
	for _, migration := range Migrations() {
		if err := m.Apply(ctx, migration); err != nil {
			return err
		}
	}
	return nil
}

// equivalentIndex returns the name of an existing index with the same keys
// and uniqueness as the migration's, or "" when there is none.
func (m *Migrator) equivalentIndex(ctx context.Context, migration Migration) (string, error) {
	specs, err := m.db.Collection(migration.Collection).Indexes().ListSpecifications(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list indexes: %w", err)
	}

	wantUnique := migration.Index.Options != nil && migration.Index.Options.Unique != nil && *migration.Index.Options.Unique
	for _, spec := range specs {
		unique := spec.Unique != nil && *spec.Unique
		if unique == wantUnique && sameKeys(spec.KeysDocument, migration.Index.Keys) {
			return spec.Name, nil
		}
	}
	return "", nil
}

// duplicateValues lists values of the migration's first key field that
// more than one document holds.
func (m *Migrator) duplicateValues(ctx context.Context, migration Migration) ([]interface{}, error) {
	keys := indexKeys(migration)
	if len(keys) == 0 {
		return nil, nil
	}

	cursor, err := m.db.Collection(migration.Collection).Aggregate(ctx,
		pipelines.DuplicateValues(keys[0], maxReportedDuplicates), options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return nil, fmt.Errorf("failed to find duplicate values: %w", err)
	}

	var rows []struct {
		Value interface{} `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode duplicate values: %w", err)
	}

	values := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.Value)
	}
	return values, nil
}

// indexKeys lists the field names of the migration's index keys
func indexKeys(migration Migration) []string {
	keys, ok := migration.Index.Keys.(bson.D)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.Key)
	}
	return names
}

// sameKeys compares an index key document from the server with the keys of
// a migration. Numeric directions match regardless of their BSON type.
func sameKeys(raw bson.Raw, want interface{}) bool {
	wantKeys, ok := want.(bson.D)
	if !ok {
		return false
	}
	var got bson.D
	if err := bson.Unmarshal(raw, &got); err != nil || len(got) != len(wantKeys) {
		return false
	}
	for i := range wantKeys {
		if got[i].Key != wantKeys[i].Key || keyDirection(got[i].Value) != keyDirection(wantKeys[i].Value) {
			return false
		}
	}
	return true
}

func keyDirection(v interface{}) string {
	switch n := v.(type) {
	case int:
		return fmt.Sprint(float64(n))
	case int32:
		return fmt.Sprint(float64(n))
	case int64:
		return fmt.Sprint(float64(n))
	case float64:
		return fmt.Sprint(n)
	default:
		return fmt.Sprint(v)
	}
}
