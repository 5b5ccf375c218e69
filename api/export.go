package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"expensetracker/config"
	"expensetracker/models"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	svc *service.ExpenseService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(svc *service.ExpenseService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

var exportHeaders = []string{"ID", "Date", "Amount", "Category", "Description"}

// loadRange 读取 start_date/end_date 并查询区间内记录，失败时已写入响应
func (h *ExportHandler) loadRange(c *gin.Context) (string, string, []models.Expense, bool) {
	start := c.Query("start_date")
	end := c.Query("end_date")
	if start == "" || end == "" {
		BadRequest(c, "start_date and end_date are required")
		return "", "", nil, false
	}

	expenses, err := h.svc.ListRange(c.Request.Context(), start, end)
	if err != nil {
		ServiceError(c, err, "Failed to query expenses")
		return "", "", nil, false
	}
	return start, end, expenses, true
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录为 CSV
// @Description 导出日期区间内（含两端）的消费记录
// @Tags export
// @Produce text/csv
// @Param start_date query string true "开始日期 (YYYY-MM-DD)"
// @Param end_date query string true "结束日期 (YYYY-MM-DD)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	start, end, expenses, ok := h.loadRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 直接打开
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}

	for _, e := range expenses {
		row := []string{
			fmt.Sprintf("%d", e.ID),
			e.Date,
			e.Amount.StringFixed(2),
			e.Category,
			e.Description,
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "Failed to generate CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("expenses_%s_%s.csv", start, end)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录为 Excel
// @Description 导出日期区间内（含两端）的消费记录，末行为合计
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param start_date query string true "开始日期 (YYYY-MM-DD)"
// @Param end_date query string true "结束日期 (YYYY-MM-DD)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Router /export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	start, end, expenses, ok := h.loadRange(c)
	if !ok {
		return
	}

	f, err := buildWorkbook(expenses)
	if err != nil {
		InternalError(c, config.SafeErrorMessage(err, "Failed to generate Excel"))
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("expenses_%s_%s.xlsx", start, end)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

const exportSheet = "Expenses"

func buildWorkbook(expenses []models.Expense) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	_ = f.SetColWidth(exportSheet, "A", "A", 8)
	_ = f.SetColWidth(exportSheet, "B", "B", 14)
	_ = f.SetColWidth(exportSheet, "C", "C", 12)
	_ = f.SetColWidth(exportSheet, "D", "D", 18)
	_ = f.SetColWidth(exportSheet, "E", "E", 36)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			f.Close()
			return nil, err
		}
		_ = f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}

	total := decimal.Zero
	for i, e := range expenses {
		row := i + 2
		amount, _ := e.Amount.Float64()
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), e.ID)
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), e.Date)
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), amount)
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), e.Category)
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("E%d", row), e.Description)
		_ = f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle)
		total = total.Add(e.Amount)
	}

	// 汇总行
	summaryRow := len(expenses) + 2
	totalValue, _ := total.Float64()
	_ = f.SetCellValue(exportSheet, fmt.Sprintf("A%d", summaryRow), "Total")
	_ = f.MergeCell(exportSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	_ = f.SetCellValue(exportSheet, fmt.Sprintf("C%d", summaryRow), totalValue)
	_ = f.SetCellValue(exportSheet, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d records", len(expenses)))
	_ = f.MergeCell(exportSheet, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("E%d", summaryRow))
	_ = f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("E%d", summaryRow), summaryStyle)

	return f, nil
}
