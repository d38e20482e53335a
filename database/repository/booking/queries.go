package bookingRepo

import (
	"context"

	"campusbook/models"
	"campusbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindConflicts returns active bookings of facility+date overlapping the
// half-open window [start, end). The overlap predicate is
// start < other.end AND end > other.start, so touching windows never match.
func (repo *MongoBookingRepo) FindConflicts(ctx context.Context, facilityID, date string, start, end int, excludeID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"facility_id": facilityID,
		"date":        date,
		"status":      bson.M{"$in": models.ActiveStatuses},
		"start":       bson.M{"$lt": end},
		"end":         bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	return repo.findSorted(ctx, filter, bson.D{{Key: "start", Value: 1}})
}

// FindActive returns all active bookings for a facility and date, ascending
// by start.
func (repo *MongoBookingRepo) FindActive(ctx context.Context, facilityID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"facility_id": facilityID,
		"date":        date,
		"status":      bson.M{"$in": models.ActiveStatuses},
	}
	return repo.findSorted(ctx, filter, bson.D{{Key: "start", Value: 1}})
}

// ListByUser returns a user's bookings, newest first.
func (repo *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return repo.findSorted(ctx, bson.M{"user_id": userID}, bson.D{{Key: "created_at", Value: -1}})
}

// ListAll returns every booking, newest first.
func (repo *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	return repo.findSorted(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

func (repo *MongoBookingRepo) findSorted(ctx context.Context, filter bson.M, sort bson.D) ([]models.Booking, error) {
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, utils.StorageError("error querying bookings", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, utils.StorageError("error decoding bookings", err)
	}
	return bookings, nil
}

// Stats aggregates booking counts for dashboards. An empty userID means all
// users (admin view).
func (repo *MongoBookingRepo) Stats(ctx context.Context, userID, today string) (models.BookingStats, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	match := bson.M{}
	if userID != "" {
		match["user_id"] = userID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"confirmed": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.StatusConfirmed}}, 1, 0,
			}}},
			"pending": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.StatusPending}}, 1, 0,
			}}},
			"cancelled": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.StatusCancelled}}, 1, 0,
			}}},
			"upcoming": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$status", models.StatusConfirmed}},
					bson.M{"$gte": bson.A{"$date", today}},
				}}, 1, 0,
			}}},
		}}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.BookingStats{}, utils.StorageError("error aggregating booking stats", err)
	}
	defer cursor.Close(ctx)

	var results []models.BookingStats
	if err := cursor.All(ctx, &results); err != nil {
		return models.BookingStats{}, utils.StorageError("error decoding booking stats", err)
	}
	if len(results) == 0 {
		return models.BookingStats{}, nil
	}
	return results[0], nil
}

// MarkCompleted flips confirmed bookings dated strictly before the given day
// to completed. Lexicographic comparison is safe on "YYYY-MM-DD" dates.
func (repo *MongoBookingRepo) MarkCompleted(ctx context.Context, before string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"status": models.StatusConfirmed,
		"date":   bson.M{"$lt": before},
	}
	update := bson.M{"$set": bson.M{"status": models.StatusCompleted}}

	res, err := repo.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, utils.StorageError("error completing past bookings", err)
	}
	return res.ModifiedCount, nil
}
