package dberrors

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Server error codes
const (
	duplicateKeyCode          = 11000
	indexOptionsConflictCode  = 85
	indexKeySpecsConflictCode = 86
)

// IsDuplicateKeyError reports whether err is a MongoDB E11000 duplicate key
// error. When field is non-empty the violated key must contain it.
func IsDuplicateKeyError(err error, field string) bool {
	if !mongo.IsDuplicateKeyError(err) {
		return false
	}
	if field == "" {
		return true
	}

	for _, we := range writeErrors(err) {
		if we.Code == duplicateKeyCode && violatesField(we.Raw, we.Message, field) {
			return true
		}
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == duplicateKeyCode {
		return violatesField(cmdErr.Raw, cmdErr.Message, field)
	}
	return false
}

// IsIndexConflict reports whether an index could not be created because an
// index on the same keys, or with the same name, already exists with other options.
func IsIndexConflict(err error) bool {
	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	return cmdErr.Code == indexOptionsConflictCode || cmdErr.Code == indexKeySpecsConflictCode
}

// IsNotFound reports whether err signals an empty single-document result.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func writeErrors(err error) []mongo.WriteError {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		return writeErr.WriteErrors
	}

	var bulkErr mongo.BulkWriteException
	if errors.As(err, &bulkErr) {
		out := make([]mongo.WriteError, 0, len(bulkErr.WriteErrors))
		for _, we := range bulkErr.WriteErrors {
			out = append(out, we.WriteError)
		}
		return out
	}
	return nil
}

// violatesField reads the violated key from the keyPattern or keyValue the
// server attaches to duplicate key errors.
func violatesField(raw bson.Raw, message, field string) bool {
	for _, key := range []string{"keyPattern", "keyValue"} {
		if doc, ok := raw.Lookup(key).DocumentOK(); ok {
			_, err := doc.LookupErr(field)
			return err == nil
		}
	}

	// Servers older than 4.2 only name the key in the message.
	return strings.Contains(message, "dup key: { "+field+":")
}
