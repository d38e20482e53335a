package bookingRepo

import (
	"context"
	"errors"
	"time"

	"campusbook/models"
	"campusbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const queryTimeout = 5 * time.Second

// MongoBookingRepo is the MongoDB-backed BookingRepository.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo builds the repository over the given client and
// database name.
func NewMongoBookingRepo(client *mongo.Client, dbName string) *MongoBookingRepo {
	return &MongoBookingRepo{coll: client.Database(dbName).Collection("bookings")}
}

// Insert persists a new booking document.
func (repo *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return utils.StorageError("error creating booking", err)
	}
	return nil
}

// Update replaces an existing booking document.
func (repo *MongoBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": booking.ID}, bson.M{"$set": booking})
	if err != nil {
		return utils.StorageError("error updating booking "+booking.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundf("booking not found: %s", booking.ID)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFoundf("booking not found: %s", id)
	}
	if err != nil {
		return nil, utils.StorageError("error fetching booking "+id, err)
	}
	return &booking, nil
}
