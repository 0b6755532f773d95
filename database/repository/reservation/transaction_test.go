package reservationRepo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func transientErr() error {
	return mongo.CommandError{
		Code:    112,
		Message: "WriteConflict",
		Labels:  []string{"TransientTransactionError"},
	}
}

func TestIsTransientTxnError(t *testing.T) {
	if !isTransientTxnError(transientErr()) {
		t.Fatalf("labeled command error not recognized as transient")
	}
	if isTransientTxnError(mongo.CommandError{Code: 11000, Message: "duplicate key"}) {
		t.Fatalf("unlabeled command error treated as transient")
	}
	if isTransientTxnError(errors.New("connection reset")) {
		t.Fatalf("plain error treated as transient")
	}
}

func TestTransientFailureRetriedExactlyOnce(t *testing.T) {
	calls := 0
	err := runWithTransientRetry(func() error {
		calls++
		return transientErr()
	})
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
	if !errors.Is(err, ErrStoreConflict) {
		t.Fatalf("exhausted retry must surface ErrStoreConflict, got %v", err)
	}
}

func TestTransientFailureRecoversOnRetry(t *testing.T) {
	calls := 0
	err := runWithTransientRetry(func() error {
		calls++
		if calls == 1 {
			return transientErr()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("retry should have recovered: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestNonTransientFailureNotRetried(t *testing.T) {
	calls := 0
	boom := errors.New("insert reservation failed")
	err := runWithTransientRetry(func() error {
		calls++
		return boom
	})
	if calls != 1 {
		t.Fatalf("non-transient failure must not be retried; got %d attempts", calls)
	}
	if !errors.Is(err, boom) || errors.Is(err, ErrStoreConflict) {
		t.Fatalf("unexpected error: %v", err)
	}
}
