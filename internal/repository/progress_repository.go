package repository

import (
	"context"

	"taalpal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProgressRepository stores one aggregate document per user id. Writes
// go through optimistic concurrency: the update filter matches both the
// user id and the version the caller read, so racing writers cannot
// silently overwrite each other.
type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) (*models.Progress, error) {
	var p models.Progress
	err := r.Col.FindOne(ctx, bson.M{"userId": userID}).Decode(&p)
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &p, nil
}

// Insert creates the aggregate for a first-seen user. A duplicate-key
// error means another writer created it in the meantime; that is
// reported as a version conflict so the caller re-reads and retries.
func (r *ProgressRepository) Insert(ctx context.Context, p *models.Progress) error {
	p.Version = 1
	res, err := r.Col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrVersionConflict
		}
		return wrapStorageErr(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

// Replace writes back a mutated aggregate, guarded by the version it was
// read at. No match means a concurrent writer got there first.
func (r *ProgressRepository) Replace(ctx context.Context, p *models.Progress) error {
	doc := *p
	doc.ID = "" // the replacement keeps the stored _id
	doc.Version = p.Version + 1
	res, err := r.Col.ReplaceOne(ctx, bson.M{"userId": p.UserID, "version": p.Version}, &doc)
	if err != nil {
		return wrapStorageErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrVersionConflict
	}
	p.Version = doc.Version
	return nil
}
