package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var expenseColumns = []string{"id", "expense_date", "amount", "category", "description", "created_at", "updated_at"}

func setupMockDB(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewGormStore(db), mock
}

func TestGormStore_FetchByDate(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT \\* FROM `expenses` WHERE expense_date = \\? ORDER BY id ASC").
		WithArgs("2024-08-01").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, "2024-08-01", "25.50", "Food", "Lunch", time.Now(), time.Now()).
			AddRow(2, "2024-08-01", "35.00", "Transportation", "Uber", time.Now(), time.Now()))

	list, err := s.FetchByDate(context.Background(), "2024-08-01")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint(1), list[0].ID)
	assert.True(t, decimal.RequireFromString("25.5").Equal(list[0].Amount))
	assert.Equal(t, "Uber", list[1].Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_FetchByDate_Empty(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WithArgs("2024-08-02").
		WillReturnRows(sqlmock.NewRows(expenseColumns))

	list, err := s.FetchByDate(context.Background(), "2024-08-02")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_FetchRange(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `expenses` WHERE expense_date >= \\? AND expense_date <= \\? ORDER BY expense_date ASC, id ASC").
		WithArgs("2024-08-01", "2024-08-31").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(3, "2024-08-02", "10", "Shopping", "Bought potatoes", time.Now(), time.Now()))

	list, err := s.FetchRange(context.Background(), "2024-08-01", "2024-08-31")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Shopping", list[0].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Insert(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	e, err := s.Insert(context.Background(), expense("2024-08-15", "10.0", "Shopping", "Bought potatoes"))
	require.NoError(t, err)
	assert.Equal(t, uint(7), e.ID)
	assert.Equal(t, "2024-08-15", e.Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteByDate(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses` WHERE expense_date = \\?").
		WithArgs("2024-08-15").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteByDate(context.Background(), "2024-08-15"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteByID(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses`").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteByID(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteByID_NotFound(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses`").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.ErrorIs(t, s.DeleteByID(context.Background(), 99), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpdateByID(t *testing.T) {
	s, mock := setupMockDB(t)
	created := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, "2024-08-01", "25.50", "Food", "Lunch", created, created))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	e, err := s.UpdateByID(context.Background(), 1, expense("2024-08-02", "0", "Other", ""))
	require.NoError(t, err)
	assert.Equal(t, uint(1), e.ID)
	assert.Equal(t, "2024-08-02", e.Date)
	assert.True(t, e.Amount.IsZero())
	assert.Equal(t, "Other", e.Category)
	assert.Equal(t, "", e.Description)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_UpdateByID_NotFound(t *testing.T) {
	s, mock := setupMockDB(t)

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns))

	_, err := s.UpdateByID(context.Background(), 5, expense("2024-08-02", "1", "Other", ""))
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
