package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStoreConflict signals that concurrent reservation transactions collided
// and the retry budget is exhausted. Callers may retry the whole request.
var ErrStoreConflict = errors.New("reservation transaction aborted by concurrent write")

// ErrSlotTaken signals that another reservation already occupies the exact
// (provider, timestamp) instant. It is raised by the in-transaction occupancy
// check or by the unique index on the pair, whichever fires first.
var ErrSlotTaken = errors.New("reservation slot already taken")

// CreateWithCounter inserts the reservation and conditionally bumps the
// provider's completed-services counter inside one multi-document
// transaction. The occupancy of the target instant is re-checked inside the
// same session, so a request that raced past the advisory admission check
// still cannot commit a second reservation for an occupied slot. A transient
// transaction error is retried once before being surfaced as
// ErrStoreConflict.
func (r *MongoReservationRepo) CreateWithCounter(
	ctx context.Context,
	reservation *models.Reservation,
	incrementProvider bool,
) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		occupied := bson.M{
			"providerId": reservation.ProviderID,
			"timestamp":  reservation.Timestamp,
		}
		count, err := r.coll.CountDocuments(sc, occupied, options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("occupancy check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if _, err := r.coll.InsertOne(sc, reservation); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert reservation failed: %w", err)
		}

		if incrementProvider {
			update := bson.M{
				"$inc": bson.M{"completedServices": 1},
				"$set": bson.M{"updatedAt": time.Now().UTC()},
			}
			res, err := r.providerColl.UpdateOne(sc, bson.M{"id": reservation.ProviderID}, update)
			if err != nil {
				return fmt.Errorf("increment provider counter failed: %w", err)
			}
			if res.MatchedCount == 0 {
				return fmt.Errorf("provider with id %s not found", reservation.ProviderID)
			}
		}
		return nil
	}

	runTxn := func() error {
		return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
			if err := sc.StartTransaction(); err != nil {
				return err
			}
			if err := txnFn(sc); err != nil {
				_ = sc.AbortTransaction(sc)
				return err
			}
			return sc.CommitTransaction(sc)
		})
	}

	err = runWithTransientRetry(runTxn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrSlotTaken) || mongo.IsDuplicateKeyError(err):
		return ErrSlotTaken
	case errors.Is(err, ErrStoreConflict):
		return err
	default:
		return fmt.Errorf("reservation transaction failed: %w", err)
	}
}

// runWithTransientRetry runs fn and reruns it exactly once when the store
// labels the failure transient. A second transient failure is surfaced as
// ErrStoreConflict.
func runWithTransientRetry(fn func() error) error {
	err := fn()
	if err != nil && isTransientTxnError(err) {
		err = fn()
	}
	if err != nil && isTransientTxnError(err) {
		return fmt.Errorf("%w: %v", ErrStoreConflict, err)
	}
	return err
}

// isTransientTxnError matches the server label mongo attaches to
// transactions that lost a write conflict and are safe to rerun whole.
func isTransientTxnError(err error) bool {
	var srvErr mongo.ServerError
	if errors.As(err, &srvErr) {
		return srvErr.HasErrorLabel("TransientTransactionError")
	}
	return false
}
