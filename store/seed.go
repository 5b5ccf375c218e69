package store

import (
	"context"
	"fmt"
	"log"

	"expensetracker/models"

	"github.com/shopspring/decimal"
)

// SampleDate 示例数据所在日期
const SampleDate = "2024-08-01"

// SampleExpenses 演示用示例数据
func SampleExpenses() []models.Expense {
	return []models.Expense{
		{Date: SampleDate, Amount: decimal.RequireFromString("25.50"), Category: models.CategoryFood, Description: "Lunch at restaurant"},
		{Date: SampleDate, Amount: decimal.RequireFromString("35.00"), Category: models.CategoryTransport, Description: "Uber ride"},
	}
}

// SeedSample 仅当示例日期没有记录时写入示例数据
func SeedSample(ctx context.Context, s Store) error {
	existing, err := s.FetchByDate(ctx, SampleDate)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, e := range SampleExpenses() {
		if _, err := s.Insert(ctx, e); err != nil {
			return fmt.Errorf("seed sample expense: %w", err)
		}
	}
	log.Printf("已写入 %d 条示例消费记录 (%s)", len(SampleExpenses()), SampleDate)
	return nil
}
