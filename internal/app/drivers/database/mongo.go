package database

import (
	"context"
	"fmt"
	"log"
	"podium-service/internal/app/config"
	"podium-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func mongoURI(mongoConfig config.MongoDB) string {
	if mongoConfig.URI != "" {
		return mongoConfig.URI
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		mongoConfig.Username,
		mongoConfig.Password,
		mongoConfig.Host,
		mongoConfig.Port,
	)
}

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	timeout := time.Duration(driverConfig.MongoDB.ConnectTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	dbOptions := options.Client().
		ApplyURI(mongoURI(driverConfig.MongoDB)).
		SetAppName(constvars.ServiceName).
		SetServerSelectionTimeout(timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}
