package migration

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	UserCollection     = "users"
	RequestCollection  = "requests"
	AuditLogCollection = "audit_logs"
)

// RunMongoMigration creates the collections and indexes the repository relies on.
// It is idempotent.
func RunMongoMigration(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
		RequestCollection: {
			{Keys: bson.D{{Key: "requester_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_requester_created")},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_status_created")},
		},
		AuditLogCollection: {
			{Keys: bson.D{{Key: "request_id", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("idx_request_created")},
		},
	}
	for _, name := range []string{UserCollection, RequestCollection, AuditLogCollection} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes[name]); err != nil {
			return fmt.Errorf("create indexes on %s, err: %w", name, err)
		}
	}
	return nil
}
