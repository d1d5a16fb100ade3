package dao

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrTransactionConflict surfaces once a conflicting concurrent writer has
// aborted the transaction more times than we are willing to retry.
var ErrTransactionConflict = errors.New("registration could not be completed due to concurrent updates, please try again")

const txMaxAttempts = 3

// runSerializable executes fn in a SERIALIZABLE transaction, retrying a
// bounded number of times when Postgres aborts with a serialization failure
// or deadlock. Any other error aborts immediately with full rollback.
func runSerializable(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < txMaxAttempts; attempt++ {
		err = db.WithContext(ctx).Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err == nil || !isRetryableTxError(err) {
			return err
		}
	}

	return ErrTransactionConflict
}

func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
