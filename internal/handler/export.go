package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler 导出当前用户的收支记录
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) loadTransactions(c *gin.Context, userID uint) ([]models.Transaction, bool) {
	var txs []models.Transaction
	if err := h.DB.Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Find(&txs).Error; err != nil {
		log.Printf("export: query transactions: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return nil, false
	}
	return txs, true
}

func typeText(t string) string {
	if t == "income" {
		return "收入"
	}
	return "支出"
}

// ExportCSV 导出收支记录为 CSV
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, ok := h.loadTransactions(c, user.ID)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM（让 Excel 正确识别中文）
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"类型", "类别", "说明", "金额(元)", "日期"})

	for i := range txs {
		tx := &txs[i]
		writer.Write([]string{
			typeText(tx.Type),
			tx.Category,
			tx.Description,
			util.FormatCent(tx.AmountCent),
			tx.OccurredAt.Format("2006-01-02"),
		})
	}
}

// ExportXLSX 导出收支记录为 XLSX
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txs, ok := h.loadTransactions(c, user.ID)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"类型", "类别", "说明", "金额(元)", "日期"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, head)
	}

	for row, tx := range txs {
		values := []interface{}{
			typeText(tx.Type),
			tx.Category,
			tx.Description,
			util.FormatCent(tx.AmountCent),
			tx.OccurredAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		log.Printf("export: write xlsx: %v", err)
	}
}
