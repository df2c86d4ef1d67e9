package db

import (
	"context"
	"log"
	"time"

	"moviestream/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] connect failed: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping failed: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] connected to %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
}

// EnsureIndexes creates the unique indexes the application relies on:
// movie and genre ids are assigned by the application, and genre slugs
// are a business key. The slug index makes the store the authority for
// slug uniqueness, so a concurrent duplicate insert surfaces as a
// duplicate-key error instead of slipping past the pre-check.
func EnsureIndexes(ctx context.Context) error {
	_, err := mongoDB.Collection("movies").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = mongoDB.Collection("genres").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func DB() *mongo.Database {
	return mongoDB
}

func Close(ctx context.Context) {
	if mongoClient == nil {
		return
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Printf("[mongo] disconnect failed: %v", err)
	}
}
