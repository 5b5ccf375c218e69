package api

import (
	"expensetracker/config"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// DayHandler 按日期整体替换的消费记录处理器
type DayHandler struct {
	svc *service.ExpenseService
}

// NewDayHandler 创建按日期处理器
func NewDayHandler(svc *service.ExpenseService) *DayHandler {
	return &DayHandler{svc: svc}
}

// DayExpense 按日期接口的单条记录，不含 ID
type DayExpense struct {
	Amount   *decimal.Decimal `json:"amount" binding:"required" swaggertype:"number" example:"10.0"`
	Category string           `json:"category" binding:"required" example:"Shopping"`
	Notes    string           `json:"notes" example:"Bought potatoes"`
}

// Get 获取指定日期的消费记录（不含 ID）
// @Summary 获取某日的消费记录
// @Description 按插入顺序返回该日期的消费记录，不暴露记录 ID
// @Tags days
// @Produce json
// @Param date path string true "日期 (YYYY-MM-DD)"
// @Success 200 {array} DayExpense "获取成功"
// @Failure 400 {object} Response "日期格式错误"
// @Router /days/{date} [get]
func (h *DayHandler) Get(c *gin.Context) {
	entries, err := h.svc.ListDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		ServiceError(c, err, "Failed to fetch expenses")
		return
	}

	list := make([]DayExpense, 0, len(entries))
	for _, e := range entries {
		amount := e.Amount
		list = append(list, DayExpense{Amount: &amount, Category: e.Category, Notes: e.Notes})
	}
	Success(c, list)
}

// Replace 整体替换指定日期的消费记录
// @Summary 替换某日的全部消费记录
// @Description 先删除该日期的全部记录，再按提交顺序写入新列表。
// @Description 第 k 条写入失败时不回滚：原记录已删除，只保留前 k-1 条，响应中的 inserted 为已写入条数，客户端需重新提交整个列表。
// @Tags days
// @Accept json
// @Produce json
// @Param date path string true "日期 (YYYY-MM-DD)"
// @Param request body []DayExpense true "该日期的完整记录列表"
// @Success 200 {object} MessageResponse "替换成功"
// @Failure 400 {object} Response "请求参数错误或部分写入"
// @Router /days/{date} [post]
func (h *DayHandler) Replace(c *gin.Context) {
	var req []DayExpense
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, config.SafeErrorMessage(err, "Invalid request body"))
		return
	}
	// null 不是列表，显式的 [] 才表示清空当天
	if req == nil {
		BadRequest(c, "Request body must be a list of expenses")
		return
	}

	entries := make([]service.DayEntry, 0, len(req))
	for _, e := range req {
		entries = append(entries, service.DayEntry{Amount: *e.Amount, Category: e.Category, Notes: e.Notes})
	}

	if err := h.svc.ReplaceDay(c.Request.Context(), c.Param("date"), entries); err != nil {
		ServiceError(c, err, "Failed to update expenses")
		return
	}
	SuccessWithMessage(c, "Successfully updated")
}
