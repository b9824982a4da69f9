package reservationRepo

import (
	"context"
	"fmt"

	"roomly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// errSlotTaken signals a conflict detected inside a transaction so the
// caller can distinguish it from infrastructure failures.
var errSlotTaken = fmt.Errorf("slot taken")

// CreateIfAvailable performs the overlap check and the insert inside a
// single multi-document transaction. Two concurrent callers with
// overlapping windows serialize on the transaction: exactly one insert
// succeeds, the other observes the conflict.
func (r *MongoReservationRepo) CreateIfAvailable(ctx context.Context, res *models.Reservation) (bool, error) {
	return r.writeIfAvailable(ctx, res, func(sc mongo.SessionContext) error {
		_, err := r.coll.InsertOne(sc, res)
		if err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}, "")
}

// UpdateIfAvailable replaces the stored reservation inside a transaction,
// re-checking the overlap against all OTHER confirmed reservations so the
// record does not conflict with itself.
func (r *MongoReservationRepo) UpdateIfAvailable(ctx context.Context, res *models.Reservation) (bool, error) {
	return r.writeIfAvailable(ctx, res, func(sc mongo.SessionContext) error {
		result, err := r.coll.ReplaceOne(sc, bson.M{"id": res.ID}, res)
		if err != nil {
			return fmt.Errorf("replace reservation failed: %w", err)
		}
		if result.MatchedCount == 0 {
			return fmt.Errorf("reservation %s not found", res.ID)
		}
		return nil
	}, res.ID)
}

func (r *MongoReservationRepo) writeIfAvailable(
	ctx context.Context,
	res *models.Reservation,
	write func(sc mongo.SessionContext) error,
	excludeID string,
) (bool, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return false, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(res.RoomNumber, res.Window, excludeID))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return errSlotTaken
		}
		return write(sc)
	}

	err = mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
	if err == errSlotTaken {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reservation transaction failed: %w", err)
	}
	return true, nil
}
