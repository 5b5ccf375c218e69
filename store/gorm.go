package store

import (
	"context"
	"errors"
	"fmt"

	"expensetracker/models"

	"gorm.io/gorm"
)

// GormStore 基于 gorm 的 expenses 表存储，按 id 升序即插入顺序
type GormStore struct {
	db *gorm.DB
}

// NewGormStore 创建数据库存储，db 需已完成迁移
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FetchByDate(ctx context.Context, date string) ([]models.Expense, error) {
	list := make([]models.Expense, 0)
	if err := s.db.WithContext(ctx).
		Where("expense_date = ?", date).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("fetch expenses for %s: %w", date, err)
	}
	return list, nil
}

func (s *GormStore) FetchRange(ctx context.Context, start, end string) ([]models.Expense, error) {
	list := make([]models.Expense, 0)
	if err := s.db.WithContext(ctx).
		Where("expense_date >= ? AND expense_date <= ?", start, end).
		Order("expense_date ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("fetch expenses from %s to %s: %w", start, end, err)
	}
	return list, nil
}

func (s *GormStore) Insert(ctx context.Context, e models.Expense) (models.Expense, error) {
	e.ID = 0
	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return models.Expense{}, fmt.Errorf("insert expense: %w", err)
	}
	return e, nil
}

func (s *GormStore) DeleteByDate(ctx context.Context, date string) error {
	if err := s.db.WithContext(ctx).
		Where("expense_date = ?", date).
		Delete(&models.Expense{}).Error; err != nil {
		return fmt.Errorf("delete expenses for %s: %w", date, err)
	}
	return nil
}

func (s *GormStore) DeleteByID(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Expense{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete expense %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) UpdateByID(ctx context.Context, id uint, e models.Expense) (models.Expense, error) {
	var existing models.Expense
	if err := s.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Expense{}, ErrNotFound
		}
		return models.Expense{}, fmt.Errorf("load expense %d: %w", id, err)
	}

	// 除 ID 外全部字段覆盖，零值也要写入
	if err := s.db.WithContext(ctx).Model(&existing).
		Select("Date", "Amount", "Category", "Description", "UpdatedAt").
		Updates(models.Expense{
			Date:        e.Date,
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
		}).Error; err != nil {
		return models.Expense{}, fmt.Errorf("update expense %d: %w", id, err)
	}

	existing.Date = e.Date
	existing.Amount = e.Amount
	existing.Category = e.Category
	existing.Description = e.Description
	return existing, nil
}
