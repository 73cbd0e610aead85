package handler

import (
	"log"
	"net/http"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatsHandler 负责统计接口，给前端图表用
type StatsHandler struct {
	DB *gorm.DB
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{DB: db}
}

// GetMonthly 返回指定月份的统计数据（每日收支 + 类别汇总）
// 月份参数：?month=2026-08，缺省为当月
func (h *StatsHandler) GetMonthly(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = time.Now().Format("2006-01")
	}

	t, err := time.Parse("2006-01", monthStr)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "月份格式错误，应为 YYYY-MM")
		return
	}

	// 月初和下月初
	startOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0)

	var txs []models.Transaction
	if err := h.DB.Where("user_id = ? AND occurred_at >= ? AND occurred_at < ?",
		user.ID, startOfMonth, endOfMonth).
		Order("occurred_at ASC").
		Find(&txs).Error; err != nil {
		log.Printf("monthly stats: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	// 按日期分组统计
	type dailyStat struct {
		Date        string `json:"date"` // YYYY-MM-DD
		IncomeCent  int64  `json:"income_cent"`
		ExpenseCent int64  `json:"expense_cent"`
		BalanceCent int64  `json:"balance_cent"`
		Income      string `json:"income"`
		Expense     string `json:"expense"`
		Balance     string `json:"balance"`
	}

	dailyMap := make(map[string]*dailyStat)
	for i := range txs {
		tx := &txs[i]
		dateKey := tx.OccurredAt.Format("2006-01-02")

		ds, ok := dailyMap[dateKey]
		if !ok {
			ds = &dailyStat{Date: dateKey}
			dailyMap[dateKey] = ds
		}

		if tx.Type == "income" {
			ds.IncomeCent += tx.AmountCent
		} else {
			ds.ExpenseCent += tx.AmountCent
		}
	}

	dailyList := make([]dailyStat, 0, len(dailyMap))
	for _, ds := range dailyMap {
		ds.BalanceCent = ds.IncomeCent - ds.ExpenseCent
		ds.Income = util.FormatCent(ds.IncomeCent)
		ds.Expense = util.FormatCent(ds.ExpenseCent)
		ds.Balance = util.FormatCent(ds.BalanceCent)
		dailyList = append(dailyList, *ds)
	}

	// 按类别统计
	type categoryStat struct {
		Category    string `json:"category"`
		IncomeCent  int64  `json:"income_cent"`
		ExpenseCent int64  `json:"expense_cent"`
		Income      string `json:"income"`
		Expense     string `json:"expense"`
	}

	catMap := make(map[string]*categoryStat)
	var totalIncomeCent, totalExpenseCent int64

	for i := range txs {
		tx := &txs[i]
		cs, ok := catMap[tx.Category]
		if !ok {
			cs = &categoryStat{Category: tx.Category}
			catMap[tx.Category] = cs
		}

		if tx.Type == "income" {
			cs.IncomeCent += tx.AmountCent
			totalIncomeCent += tx.AmountCent
		} else {
			cs.ExpenseCent += tx.AmountCent
			totalExpenseCent += tx.AmountCent
		}
	}

	catList := make([]categoryStat, 0, len(catMap))
	for _, cs := range catMap {
		cs.Income = util.FormatCent(cs.IncomeCent)
		cs.Expense = util.FormatCent(cs.ExpenseCent)
		catList = append(catList, *cs)
	}

	util.Success(c, http.StatusOK, util.Response{
		"month":         monthStr,
		"daily":         dailyList,
		"by_category":   catList,
		"total_income":  util.FormatCent(totalIncomeCent),
		"total_expense": util.FormatCent(totalExpenseCent),
		"total_balance": util.FormatCent(totalIncomeCent - totalExpenseCent),
	})
}
