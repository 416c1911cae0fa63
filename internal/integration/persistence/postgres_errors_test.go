package persistence_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainerror "github.com/nutrition-tracker/backend/internal/domain/error"
	"github.com/nutrition-tracker/backend/internal/integration/persistence"
)

// newPostgresMock opens gorm's PostgreSQL dialect over sqlmock.
func newPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestFoodRepository_PostgresErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unique violation maps to name exists", func(t *testing.T) {
		gdb, mock := newPostgresMock(t)
		mock.ExpectExec(`INSERT INTO "foods"`).
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := persistence.NewFoodRepository(gdb).Create(ctx, newRice())

		assert.ErrorIs(t, err, domainerror.ErrFoodNameExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("foreign key violation maps to referenced", func(t *testing.T) {
		gdb, mock := newPostgresMock(t)
		mock.ExpectExec(`DELETE FROM "foods"`).
			WillReturnError(&pgconn.PgError{Code: "23503", Message: "update or delete violates foreign key constraint"})

		err := persistence.NewFoodRepository(gdb).Delete(ctx, uuid.New())

		assert.ErrorIs(t, err, domainerror.ErrFoodReferenced)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		gdb, mock := newPostgresMock(t)
		mock.ExpectQuery(`SELECT \* FROM "foods"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

		_, err := persistence.NewFoodRepository(gdb).FindByID(ctx, uuid.New())

		assert.ErrorIs(t, err, domainerror.ErrFoodNotFound)
	})

	t.Run("other failures propagate unchanged", func(t *testing.T) {
		gdb, mock := newPostgresMock(t)
		boom := errors.New("connection refused")
		mock.ExpectQuery(`SELECT \* FROM "foods"`).WillReturnError(boom)

		_, err := persistence.NewFoodRepository(gdb).FindAll(ctx)

		assert.ErrorIs(t, err, boom)
	})
}

func TestEntryRepository_PostgresErrors(t *testing.T) {
	ctx := context.Background()
	gdb, mock := newPostgresMock(t)
	boom := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT .*date.* FROM "entries"`).WillReturnError(boom)

	_, err := persistence.NewEntryRepository(gdb).FindDistinctDates(ctx)

	assert.ErrorIs(t, err, boom)
}

func TestEntryRepository_FindAllSkipsFoodQuery(t *testing.T) {
	ctx := context.Background()
	gdb, mock := newPostgresMock(t)
	mock.ExpectQuery(`SELECT \* FROM "entries" ORDER BY submitted_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "food_id", "weight", "calories"}).
			AddRow(uuid.New().String(), uuid.New().String(), 150.0, 195.0))

	all, err := persistence.NewEntryRepository(gdb).FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Food)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepository_PostgresErrors(t *testing.T) {
	ctx := context.Background()
	gdb, mock := newPostgresMock(t)
	boom := errors.New("too many connections")
	mock.ExpectQuery(`SELECT \* FROM "goals"`).WillReturnError(boom)

	_, err := persistence.NewGoalRepository(gdb).FindActive(ctx)

	assert.ErrorIs(t, err, boom)
}
