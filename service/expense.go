package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"expensetracker/models"
	"expensetracker/store"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidDate 日期不是合法的 YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
	// ErrInvalidRange 结束日期早于开始日期
	ErrInvalidRange = errors.New("end date must not be before start date")
	// ErrValidation 字段校验失败
	ErrValidation = errors.New("validation failed")
)

// ExpenseInput ID 接口的完整记录字段
type ExpenseInput struct {
	Date        string
	Amount      decimal.Decimal
	Category    string
	Description string
}

// DayEntry 按日期整体替换接口的单条记录，不含日期与 ID
type DayEntry struct {
	Amount   decimal.Decimal
	Category string
	Notes    string
}

// ReplaceError 按日期替换过程中第 Index 条写入失败。
// 此时该日期原有记录已删除，只保留了前 Inserted 条新记录，调用方需要整体重试。
type ReplaceError struct {
	Date     string
	Index    int
	Inserted int
	Err      error
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("replace expenses for %s: entry %d: %v (%d of the new entries were saved, resubmit the whole list)",
		e.Date, e.Index, e.Err, e.Inserted)
}

func (e *ReplaceError) Unwrap() error {
	return e.Err
}

// ExpenseService 消费记录服务
type ExpenseService struct {
	store store.Store

	// 所有写操作串行执行，保证同一日期的替换不会交错
	writeMu sync.Mutex
}

// NewExpenseService 创建消费记录服务
func NewExpenseService(s store.Store) *ExpenseService {
	return &ExpenseService{store: s}
}

// ListByDate 获取指定日期的全部消费记录，按插入顺序
func (s *ExpenseService) ListByDate(ctx context.Context, date string) ([]models.Expense, error) {
	if !models.ValidDate(date) {
		return nil, ErrInvalidDate
	}
	return s.store.FetchByDate(ctx, date)
}

// ListRange 获取日期区间内（含两端）的消费记录
func (s *ExpenseService) ListRange(ctx context.Context, start, end string) ([]models.Expense, error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}
	return s.store.FetchRange(ctx, start, end)
}

// Create 新建一条消费记录
func (s *ExpenseService) Create(ctx context.Context, in ExpenseInput) (models.Expense, error) {
	e, err := in.toExpense()
	if err != nil {
		return models.Expense{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.store.Insert(ctx, e)
}

// Update 覆盖指定 ID 记录除 ID 外的全部字段
func (s *ExpenseService) Update(ctx context.Context, id uint, in ExpenseInput) (models.Expense, error) {
	e, err := in.toExpense()
	if err != nil {
		return models.Expense{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.store.UpdateByID(ctx, id, e)
}

// Delete 删除指定 ID 的记录
func (s *ExpenseService) Delete(ctx context.Context, id uint) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.store.DeleteByID(ctx, id)
}

// ListDay 按日期整体替换接口的读取，不暴露 ID
func (s *ExpenseService) ListDay(ctx context.Context, date string) ([]DayEntry, error) {
	list, err := s.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	entries := make([]DayEntry, 0, len(list))
	for _, e := range list {
		entries = append(entries, DayEntry{Amount: e.Amount, Category: e.Category, Notes: e.Description})
	}
	return entries, nil
}

// ReplaceDay 先删除该日期全部记录，再按提交顺序逐条写入。
// 第 k 条校验或写入失败时立即返回 *ReplaceError，不回滚已删除和已写入的记录。
func (s *ExpenseService) ReplaceDay(ctx context.Context, date string, entries []DayEntry) error {
	if !models.ValidDate(date) {
		return ErrInvalidDate
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.store.DeleteByDate(ctx, date); err != nil {
		return err
	}

	for i, entry := range entries {
		e, err := ExpenseInput{
			Date:        date,
			Amount:      entry.Amount,
			Category:    entry.Category,
			Description: entry.Notes,
		}.toExpense()
		if err == nil {
			_, err = s.store.Insert(ctx, e)
		}
		if err != nil {
			return &ReplaceError{Date: date, Index: i, Inserted: i, Err: err}
		}
	}
	return nil
}

// ValidateRange 校验日期区间
func ValidateRange(start, end string) error {
	if !models.ValidDate(start) || !models.ValidDate(end) {
		return ErrInvalidDate
	}
	if end < start {
		return ErrInvalidRange
	}
	return nil
}

func (in ExpenseInput) toExpense() (models.Expense, error) {
	if !models.ValidDate(in.Date) {
		return models.Expense{}, ErrInvalidDate
	}
	if in.Amount.IsNegative() {
		return models.Expense{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	if !in.Amount.Equal(in.Amount.Round(models.AmountScale)) {
		return models.Expense{}, fmt.Errorf("%w: amount must have at most %d decimal places", ErrValidation, models.AmountScale)
	}
	if in.Amount.GreaterThanOrEqual(models.MaxAmount) {
		return models.Expense{}, fmt.Errorf("%w: amount must be less than %s", ErrValidation, models.MaxAmount)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return models.Expense{}, fmt.Errorf("%w: category is required", ErrValidation)
	}
	return models.Expense{
		Date:        in.Date,
		Amount:      in.Amount,
		Category:    category,
		Description: in.Description,
	}, nil
}
