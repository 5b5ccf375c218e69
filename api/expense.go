package api

import (
	"errors"
	"fmt"
	"strconv"

	"expensetracker/config"
	"expensetracker/models"
	"expensetracker/service"
	"expensetracker/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseHandler 按 ID 管理的消费记录处理器
type ExpenseHandler struct {
	svc *service.ExpenseService
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(svc *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// ExpenseRequest 创建/更新消费记录请求，更新时为完整记录
type ExpenseRequest struct {
	Date        string           `json:"date" binding:"required" example:"2024-08-01"`
	Amount      *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"25.50"`
	Category    string           `json:"category" binding:"required" example:"Food"`
	Description string           `json:"description" example:"Lunch at restaurant"`
}

func (r ExpenseRequest) input() service.ExpenseInput {
	return service.ExpenseInput{
		Date:        r.Date,
		Amount:      *r.Amount,
		Category:    r.Category,
		Description: r.Description,
	}
}

// ListByDate 获取指定日期的消费记录
// @Summary 获取指定日期的消费记录
// @Description 按插入顺序返回该日期的全部消费记录，没有记录时返回空数组
// @Tags expenses
// @Produce json
// @Param date path string true "日期 (YYYY-MM-DD)"
// @Success 200 {array} models.Expense "获取成功"
// @Failure 400 {object} Response "日期格式错误"
// @Router /expenses/{date} [get]
func (h *ExpenseHandler) ListByDate(c *gin.Context) {
	list, err := h.svc.ListByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		ServiceError(c, err, "Failed to fetch expenses")
		return
	}
	Success(c, list)
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 创建一条新的消费记录并分配 ID
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "消费记录信息"
// @Success 200 {object} models.Expense "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /expenses/ [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Invalid request body"))
		return
	}

	expense, err := h.svc.Create(c.Request.Context(), req.input())
	if err != nil {
		ServiceError(c, err, "Failed to create expense")
		return
	}
	Success(c, expense)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 用完整记录覆盖指定 ID 的消费记录，ID 保持不变
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "消费记录ID"
// @Param request body ExpenseRequest true "完整的消费记录"
// @Success 200 {object} models.Expense "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Invalid request body"))
		return
	}

	expense, err := h.svc.Update(c.Request.Context(), id, req.input())
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, fmt.Sprintf("Expense with ID %d not found", id))
		return
	}
	if err != nil {
		ServiceError(c, err, "Failed to update expense")
		return
	}
	Success(c, expense)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 删除指定 ID 的消费记录
// @Tags expenses
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		NotFound(c, fmt.Sprintf("Expense with ID %d not found", id))
		return
	}
	if err != nil {
		ServiceError(c, err, "Failed to delete expense")
		return
	}
	SuccessWithMessage(c, fmt.Sprintf("Expense with ID %d deleted successfully", id))
}

// GetCategories 获取消费类别列表
// @Summary 获取消费类别列表
// @Description 表单可选的消费类别，存储层不限制类别取值
// @Tags expenses
// @Produce json
// @Success 200 {array} string "获取成功"
// @Router /categories [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	Success(c, models.GetCategories())
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "Invalid expense ID")
		return 0, false
	}
	return uint(id), true
}
