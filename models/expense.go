package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// 金额以 JSON 数字输出，与表单端约定一致
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout 消费日期的规范格式 YYYY-MM-DD
const DateLayout = "2006-01-02"

// 金额列为 decimal(10,2)：最多两位小数，整数部分最多 8 位
const (
	AmountScale     = 2
	AmountIntDigits = 8
)

// MaxAmount 金额上限（不含）
var MaxAmount = decimal.New(1, AmountIntDigits)

// Expense 消费记录模型
type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Date        string          `json:"date" gorm:"column:expense_date;size:10;index;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category    string          `json:"category" gorm:"size:50;not null"`
	Description string          `json:"description" gorm:"size:255"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// ParseDate 按规范格式解析日期，月份、天数越界均视为非法
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidDate 判断字符串是否为合法的 YYYY-MM-DD 日期
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// Category 消费类别常量，仅供表单选择，存储层不做限制
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transportation"
	CategoryHousing       = "Housing"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryHealthcare    = "Healthcare"
	CategoryShopping      = "Shopping"
	CategoryEducation     = "Education"
	CategoryTravel        = "Travel"
	CategoryBills         = "Bills"
	CategoryOther         = "Other"
)

// GetCategories 获取所有消费类别
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryHousing,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryShopping,
		CategoryEducation,
		CategoryTravel,
		CategoryBills,
		CategoryOther,
	}
}
