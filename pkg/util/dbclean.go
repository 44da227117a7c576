package util

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

func MongoCleanup(ctx context.Context, mongodbClient *mongo.Client, dbName string) error {
	return mongodbClient.Database(dbName).Drop(ctx)
}
