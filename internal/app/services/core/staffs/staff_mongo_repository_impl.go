package staffs

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StaffMongoRepository struct {
	Collection *mongo.Collection
}

func NewStaffMongoRepository(db *mongo.Client, dbName string) *StaffMongoRepository {
	return &StaffMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStaff),
	}
}

var _ contracts.StaffRepository = (*StaffMongoRepository)(nil)

// EnsureIndexes creates the unique username index. Safe to call on every boot.
func (repo *StaffMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := repo.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *StaffMongoRepository) FindAll(ctx context.Context) ([]models.StaffUser, error) {
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	staff := make([]models.StaffUser, 0)
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return staff, nil
}

func (repo *StaffMongoRepository) FindByUsername(ctx context.Context, username string) (*models.StaffUser, error) {
	var staff models.StaffUser
	err := repo.Collection.FindOne(ctx, bson.M{"username": username}).Decode(&staff)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staff, nil
}

func (repo *StaffMongoRepository) CountActiveAdmins(ctx context.Context) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{
		"role":   constvars.StaffRoleAdmin,
		"active": true,
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocument(err)
	}
	return count, nil
}

func (repo *StaffMongoRepository) Create(ctx context.Context, staff *models.StaffUser) error {
	_, err := repo.Collection.InsertOne(ctx, staff)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrStaffUsernameExists(err, staff.Username)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *StaffMongoRepository) Update(ctx context.Context, username string, staff *models.StaffUser) error {
	result, err := repo.Collection.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": staff.ConvertToBsonM()},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrStaffUsernameExists(err, staff.Username)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrStaffNotFound(nil, username)
	}
	return nil
}

func (repo *StaffMongoRepository) Delete(ctx context.Context, username string) error {
	result, err := repo.Collection.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrStaffNotFound(nil, username)
	}
	return nil
}
