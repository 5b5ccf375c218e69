// Package store 保存消费记录，提供内存与数据库两种实现。
package store

import (
	"context"
	"errors"

	"expensetracker/models"
)

// ErrNotFound 指定 ID 的记录不存在
var ErrNotFound = errors.New("expense not found")

// Store 消费记录存储
//
// FetchByDate 与 FetchRange 按插入顺序返回记录，无匹配时返回空切片。
// Insert 总是分配新的 ID，不会修改已有记录。
// DeleteByDate 幂等；DeleteByID 与 UpdateByID 在记录不存在时返回 ErrNotFound。
type Store interface {
	FetchByDate(ctx context.Context, date string) ([]models.Expense, error)
	FetchRange(ctx context.Context, start, end string) ([]models.Expense, error)
	Insert(ctx context.Context, e models.Expense) (models.Expense, error)
	DeleteByDate(ctx context.Context, date string) error
	DeleteByID(ctx context.Context, id uint) error
	UpdateByID(ctx context.Context, id uint, e models.Expense) (models.Expense, error)
}
