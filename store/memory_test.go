package store

import (
	"context"
	"testing"

	"expensetracker/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(date, amount, category, desc string) models.Expense {
	return models.Expense{Date: date, Amount: decimal.RequireFromString(amount), Category: category, Description: desc}
}

func TestMemoryStore_FetchEmpty(t *testing.T) {
	s := NewMemoryStore()

	list, err := s.FetchByDate(context.Background(), "2024-08-01")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryStore_InsertAndFetch(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	first, err := s.Insert(ctx, expense("2024-08-01", "25.50", "Food", "Lunch"))
	require.NoError(t, err)
	second, err := s.Insert(ctx, expense("2024-08-01", "35.00", "Transportation", "Uber"))
	require.NoError(t, err)
	_, err = s.Insert(ctx, expense("2024-08-02", "5", "Other", ""))
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	list, err := s.FetchByDate(ctx, "2024-08-01")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Lunch", list[0].Description)
	assert.Equal(t, "Uber", list[1].Description)
	assert.True(t, decimal.RequireFromString("25.5").Equal(list[0].Amount))
	assert.Equal(t, "Food", list[0].Category)
}

func TestMemoryStore_FetchReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Insert(ctx, expense("2024-08-01", "1", "Food", "a"))
	require.NoError(t, err)

	list, _ := s.FetchByDate(ctx, "2024-08-01")
	list[0].Description = "changed"

	again, _ := s.FetchByDate(ctx, "2024-08-01")
	assert.Equal(t, "a", again[0].Description)
}

func TestMemoryStore_DeleteByDate(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, _ = s.Insert(ctx, expense("2024-08-01", "1", "Food", "a"))
	_, _ = s.Insert(ctx, expense("2024-08-02", "2", "Food", "b"))
	_, _ = s.Insert(ctx, expense("2024-08-01", "3", "Food", "c"))

	require.NoError(t, s.DeleteByDate(ctx, "2024-08-01"))

	list, err := s.FetchByDate(ctx, "2024-08-01")
	require.NoError(t, err)
	assert.Empty(t, list)

	other, _ := s.FetchByDate(ctx, "2024-08-02")
	require.Len(t, other, 1)
	assert.Equal(t, "b", other[0].Description)

	// 无记录时也不报错
	assert.NoError(t, s.DeleteByDate(ctx, "1999-01-01"))
}

func TestMemoryStore_IDsNotReused(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a, _ := s.Insert(ctx, expense("2024-08-01", "1", "Food", "a"))
	require.NoError(t, s.DeleteByID(ctx, a.ID))

	b, _ := s.Insert(ctx, expense("2024-08-01", "1", "Food", "b"))
	assert.Greater(t, b.ID, a.ID)
}

func TestMemoryStore_DeleteByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a, _ := s.Insert(ctx, expense("2024-08-01", "1", "Food", "a"))
	b, _ := s.Insert(ctx, expense("2024-08-01", "2", "Food", "b"))

	require.NoError(t, s.DeleteByID(ctx, a.ID))
	assert.ErrorIs(t, s.DeleteByID(ctx, a.ID), ErrNotFound)

	list, _ := s.FetchByDate(ctx, "2024-08-01")
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestMemoryStore_UpdateByID(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	a, _ := s.Insert(ctx, expense("2024-08-01", "1", "Food", "a"))

	updated, err := s.UpdateByID(ctx, a.ID, expense("2024-08-03", "9.99", "Travel", "train"))
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, "2024-08-03", updated.Date)

	old, _ := s.FetchByDate(ctx, "2024-08-01")
	assert.Empty(t, old)
	moved, _ := s.FetchByDate(ctx, "2024-08-03")
	require.Len(t, moved, 1)
	assert.Equal(t, "train", moved[0].Description)

	_, err = s.UpdateByID(ctx, 42, expense("2024-08-03", "1", "Food", ""))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_FetchRange(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, _ = s.Insert(ctx, expense("2024-08-03", "1", "Food", "c"))
	_, _ = s.Insert(ctx, expense("2024-08-01", "2", "Food", "a"))
	_, _ = s.Insert(ctx, expense("2024-09-01", "3", "Food", "out"))
	_, _ = s.Insert(ctx, expense("2024-08-01", "4", "Food", "b"))

	list, err := s.FetchRange(ctx, "2024-08-01", "2024-08-31")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Description)
	assert.Equal(t, "b", list[1].Description)
	assert.Equal(t, "c", list[2].Description)
}

func TestSeedSample(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, SeedSample(ctx, s))
	require.NoError(t, SeedSample(ctx, s))

	list, err := s.FetchByDate(ctx, SampleDate)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.CategoryFood, list[0].Category)
	assert.Equal(t, models.CategoryTransport, list[1].Category)
}

func TestMemoryStore_DeleteByIDClearsTail(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, desc := range []string{"a", "b", "c"} {
		_, err := s.Insert(ctx, expense("2024-08-01", "1", "Food", desc))
		require.NoError(t, err)
	}

	require.NoError(t, s.DeleteByID(ctx, 1))

	require.Len(t, s.records, 2)
	assert.Equal(t, []uint{2, 3}, []uint{s.records[0].ID, s.records[1].ID})
	// 底层数组中被移出的尾部元素已清零
	tail := s.records[:3][2]
	assert.Equal(t, models.Expense{}, tail)
}
