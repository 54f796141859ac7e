package visits

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VisitMongoRepository struct {
	Collection *mongo.Collection
}

func NewVisitMongoRepository(db *mongo.Client, dbName string) contracts.VisitRepository {
	return &VisitMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVisits),
	}
}

// GetOrCreate inserts an empty visit atomically when the id is unknown.
func (repo *VisitMongoRepository) GetOrCreate(ctx context.Context, visitID string) (*models.Visit, error) {
	now := time.Now().UTC()
	filter := bson.M{"_id": visitID}
	update := bson.M{"$setOnInsert": bson.M{
		"createdAt":  now,
		"updatedAt":  now,
		"patient":    models.Patient{},
		"bodyRegion": "",
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var visit models.Visit
	err := repo.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&visit)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &visit, nil
}

func (repo *VisitMongoRepository) FindByID(ctx context.Context, visitID string) (*models.Visit, error) {
	var visit models.Visit
	err := repo.Collection.FindOne(ctx, bson.M{"_id": visitID}).Decode(&visit)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &visit, nil
}

// Save replaces the whole document, last write wins.
func (repo *VisitMongoRepository) Save(ctx context.Context, visit *models.Visit) error {
	visit.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": visit.ID}, visit, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *VisitMongoRepository) List(ctx context.Context) ([]models.Visit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	visits := make([]models.Visit, 0)
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return visits, nil
}
