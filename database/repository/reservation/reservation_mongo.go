package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agendly/database"
	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll         *mongo.Collection
	providerColl *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	db := database.DB()
	repo := &MongoReservationRepo{
		coll:         db.Collection("reservations"),
		providerColl: db.Collection("providers"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// IsNotFound reports whether err means the requested document does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func (r *MongoReservationRepo) GetByID(id string) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var reservation models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&reservation); err != nil {
		return nil, fmt.Errorf("failed to fetch reservation with id %s: %w", id, err)
	}
	return &reservation, nil
}

func (r *MongoReservationRepo) ListByClient(clientID string) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for client %s: %w", clientID, err)
	}
	defer cursor.Close(ctx)
	var reservations []models.Reservation
	for cursor.Next(ctx) {
		var res models.Reservation
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reservations, nil
}

// ExistsAt matches on the exact stored instant. Status is deliberately not
// part of the filter: cancelled reservations still occupy their slot. The
// instant is compared at millisecond precision, matching BSON datetime
// storage.
func (r *MongoReservationRepo) ExistsAt(providerID string, ts time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"providerId": providerID, "timestamp": ts.UTC().Truncate(time.Millisecond)}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check reservations at %s for provider %s: %w",
			ts.Format(time.RFC3339Nano), providerID, err)
	}
	return count > 0, nil
}

func (r *MongoReservationRepo) Update(reservation *models.Reservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": reservation.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": reservation})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to update reservation with id %s: %w", reservation.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reservation with id %s not found", reservation.ID)
	}
	return nil
}
