package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionHandler 负责收支记录相关接口
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

// ---------- 请求/响应结构 ----------

type transactionReq struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Category    string          `json:"category" binding:"max=32"`
	Description string          `json:"description" binding:"max=255"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

type transactionResp struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	AmountCent  int64     `json:"amount_cent"`
	Amount      string    `json:"amount"` // 元（字符串，方便前端直接显示）
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		ID:          t.ID,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		AmountCent:  t.AmountCent,
		Amount:      util.FormatCent(t.AmountCent),
		Date:        t.OccurredAt,
		CreatedAt:   t.CreatedAt,
	}
}

// validate 做公共字段校验，返回金额（分）和日期
func (r *transactionReq) validate() (int64, time.Time, string) {
	r.Category = strings.TrimSpace(r.Category)
	if r.Category == "" {
		return 0, time.Time{}, "请选择类别"
	}

	amountCent, err := util.AmountToCent(r.Amount)
	if err != nil {
		return 0, time.Time{}, "请输入有效金额"
	}

	// 交易日期：默认为今天
	occurredAt := time.Now()
	if r.Date != "" {
		t, ok := parseDate(r.Date)
		if !ok {
			return 0, time.Time{}, "日期格式错误"
		}
		occurredAt = t
	}

	return amountCent, occurredAt, ""
}

// ---------- 记一笔 ----------

func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	amountCent, occurredAt, msg := req.validate()
	if msg != "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	tx := models.Transaction{
		UserID:      user.ID,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		AmountCent:  amountCent,
		OccurredAt:  occurredAt,
	}

	if err := h.DB.Create(&tx).Error; err != nil {
		log.Printf("create transaction: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"transaction": toTransactionResp(&tx),
	})
}

// ---------- 列表 ----------

// List 返回当前用户的全部收支记录，按日期倒序
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	q := h.DB.Where("user_id = ?", user.ID)

	// 类型筛选：income / expense
	if txType := c.Query("type"); txType == "income" || txType == "expense" {
		q = q.Where("type = ?", txType)
	}

	var txs []models.Transaction
	if err := q.Order("occurred_at DESC, id DESC").Find(&txs).Error; err != nil {
		log.Printf("list transactions: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	items := make([]transactionResp, 0, len(txs))
	for i := range txs {
		items = append(items, toTransactionResp(&txs[i]))
	}

	util.Success(c, http.StatusOK, util.Response{
		"items": items,
	})
}

// ---------- 修改 ----------

// Update 修改一条已有记录（只能修改自己的）
func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	amountCent, occurredAt, msg := req.validate()
	if msg != "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	// 别人的记录和不存在的记录一视同仁，都返回 404
	var tx models.Transaction
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		} else {
			log.Printf("update transaction: query: %v", err)
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	tx.Type = req.Type
	tx.Category = req.Category
	tx.Description = req.Description
	tx.AmountCent = amountCent
	tx.OccurredAt = occurredAt

	if err := h.DB.Save(&tx).Error; err != nil {
		log.Printf("update transaction: save: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"transaction": toTransactionResp(&tx),
	})
}

// ---------- 删除 ----------

func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Transaction{})
	if res.Error != nil {
		log.Printf("delete transaction: %v", res.Error)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "记录不存在")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": "删除成功",
	})
}
