package facilityRepo

import (
	"context"
	"errors"
	"time"

	"campusbook/models"
	"campusbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

// MongoFacilityRepo is the MongoDB-backed FacilityRepository.
type MongoFacilityRepo struct {
	coll *mongo.Collection
}

func NewMongoFacilityRepo(client *mongo.Client, dbName string) *MongoFacilityRepo {
	return &MongoFacilityRepo{coll: client.Database(dbName).Collection("facilities")}
}

func (repo *MongoFacilityRepo) Insert(ctx context.Context, facility *models.Facility) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, facility); err != nil {
		return utils.StorageError("error creating facility", err)
	}
	return nil
}

func (repo *MongoFacilityRepo) Update(ctx context.Context, facility *models.Facility) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": facility.ID}, bson.M{"$set": facility})
	if err != nil {
		return utils.StorageError("error updating facility "+facility.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundf("facility not found: %s", facility.ID)
	}
	return nil
}

func (repo *MongoFacilityRepo) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	return repo.findOne(ctx, bson.M{"id": id}, id)
}

func (repo *MongoFacilityRepo) GetActiveByID(ctx context.Context, id string) (*models.Facility, error) {
	return repo.findOne(ctx, bson.M{"id": id, "active": true}, id)
}

func (repo *MongoFacilityRepo) findOne(ctx context.Context, filter bson.M, id string) (*models.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var facility models.Facility
	err := repo.coll.FindOne(ctx, filter).Decode(&facility)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFoundf("facility not found: %s", id)
	}
	if err != nil {
		return nil, utils.StorageError("error fetching facility "+id, err)
	}
	return &facility, nil
}

func (repo *MongoFacilityRepo) List(ctx context.Context, filter ListFilter) ([]models.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.ActiveOnly {
		query["active"] = true
	}

	cursor, err := repo.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, utils.StorageError("error querying facilities", err)
	}
	defer cursor.Close(ctx)

	facilities := []models.Facility{}
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, utils.StorageError("error decoding facilities", err)
	}
	return facilities, nil
}

func (repo *MongoFacilityRepo) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"active": active, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return utils.StorageError("error updating facility active flag", err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundf("facility not found: %s", id)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the facilities collection.
func (repo *MongoFacilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("category_active_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return utils.StorageError("failed to create facility indexes", err)
	}
	return nil
}
