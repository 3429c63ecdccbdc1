package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound means no record matched the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrVersionConflict means a versioned write lost the race with a
	// concurrent writer. Callers are expected to re-read and retry.
	ErrVersionConflict = errors.New("version conflict")
	// ErrUnavailable means the backing store could not be reached. The
	// original driver error is wrapped but should not reach end callers.
	ErrUnavailable = errors.New("storage unavailable")
)

// wrapFindErr translates driver errors from a single-document lookup.
func wrapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return wrapStorageErr(err)
}

func wrapStorageErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
