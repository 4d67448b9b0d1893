package pgsql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
)

var (
	lockQuery      = regexp.QuoteMeta(`SELECT pg_try_advisory_xact_lock($1);`)
	recomputeQuery = regexp.QuoteMeta(`UPDATE employees e`)
)

func TestRecomputeAll_UpdatesInOneTransaction(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery(lockQuery).WithArgs(recomputeLockKey).
		WillReturnRows(pgxmock.NewRows([]string{"pg_try_advisory_xact_lock"}).AddRow(true))
	mock.ExpectExec(recomputeQuery).WithArgs(today).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectCommit()

	repo := newPgxBalanceRepository(mock)
	updated, err := repo.RecomputeAll(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeAll_LockHeldElsewhere(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery(lockQuery).WithArgs(recomputeLockKey).
		WillReturnRows(pgxmock.NewRows([]string{"pg_try_advisory_xact_lock"}).AddRow(false))
	mock.ExpectRollback()

	repo := newPgxBalanceRepository(mock)
	_, err = repo.RecomputeAll(context.Background(), time.Now())

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeAll_UpdateFailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery(lockQuery).WithArgs(recomputeLockKey).
		WillReturnRows(pgxmock.NewRows([]string{"pg_try_advisory_xact_lock"}).AddRow(true))
	mock.ExpectExec(recomputeQuery).WithArgs(today).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := newPgxBalanceRepository(mock)
	_, err = repo.RecomputeAll(context.Background(), today)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecomputeAll_CommitFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	today := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mock.ExpectQuery(lockQuery).WithArgs(recomputeLockKey).
		WillReturnRows(pgxmock.NewRows([]string{"pg_try_advisory_xact_lock"}).AddRow(true))
	mock.ExpectExec(recomputeQuery).WithArgs(today).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
	mock.ExpectRollback()

	repo := newPgxBalanceRepository(mock)
	_, err = repo.RecomputeAll(context.Background(), today)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
