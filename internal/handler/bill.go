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

// BillHandler 负责待付账单相关接口
type BillHandler struct {
	DB *gorm.DB
}

func NewBillHandler(db *gorm.DB) *BillHandler {
	return &BillHandler{DB: db}
}

type billReq struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"due_date" binding:"required"`
	Paid        bool            `json:"paid"`
}

type billResp struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	AmountCent  int64     `json:"amount_cent"`
	Amount      string    `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"created_at"`
}

func toBillResp(b *models.Bill) billResp {
	return billResp{
		ID:          b.ID,
		Description: b.Description,
		AmountCent:  b.AmountCent,
		Amount:      util.FormatCent(b.AmountCent),
		DueDate:     b.DueDate,
		Paid:        b.Paid,
		CreatedAt:   b.CreatedAt,
	}
}

func (r *billReq) validate() (int64, time.Time, string) {
	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		return 0, time.Time{}, "请填写账单说明"
	}

	amountCent, err := util.AmountToCent(r.Amount)
	if err != nil {
		return 0, time.Time{}, "请输入有效金额"
	}

	dueDate, ok := parseDate(r.DueDate)
	if !ok {
		return 0, time.Time{}, "日期格式错误"
	}

	return amountCent, dueDate, ""
}

func (h *BillHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req billReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	amountCent, dueDate, msg := req.validate()
	if msg != "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	bill := models.Bill{
		UserID:      user.ID,
		Description: req.Description,
		AmountCent:  amountCent,
		DueDate:     dueDate,
		Paid:        req.Paid,
	}

	if err := h.DB.Create(&bill).Error; err != nil {
		log.Printf("create bill: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"bill": toBillResp(&bill),
	})
}

// List 返回当前用户的账单，按到期日升序
func (h *BillHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var bills []models.Bill
	if err := h.DB.Where("user_id = ?", user.ID).
		Order("due_date ASC, id ASC").
		Find(&bills).Error; err != nil {
		log.Printf("list bills: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	items := make([]billResp, 0, len(bills))
	for i := range bills {
		items = append(items, toBillResp(&bills[i]))
	}

	util.Success(c, http.StatusOK, util.Response{
		"items": items,
	})
}

func (h *BillHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	var req billReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	amountCent, dueDate, msg := req.validate()
	if msg != "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	var bill models.Bill
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "账单不存在")
		} else {
			log.Printf("update bill: query: %v", err)
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	bill.Description = req.Description
	bill.AmountCent = amountCent
	bill.DueDate = dueDate
	bill.Paid = req.Paid

	if err := h.DB.Save(&bill).Error; err != nil {
		log.Printf("update bill: save: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"bill": toBillResp(&bill),
	})
}

func (h *BillHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Bill{})
	if res.Error != nil {
		log.Printf("delete bill: %v", res.Error)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "账单不存在")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": "删除成功",
	})
}
