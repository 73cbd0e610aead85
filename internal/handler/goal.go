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

// GoalHandler 负责储蓄目标相关接口
type GoalHandler struct {
	DB *gorm.DB
}

func NewGoalHandler(db *gorm.DB) *GoalHandler {
	return &GoalHandler{DB: db}
}

type goalReq struct {
	Name       string          `json:"name" binding:"required,max=64"`
	Amount     decimal.Decimal `json:"amount"`
	Saved      decimal.Decimal `json:"saved"`
	TargetDate string          `json:"target_date"`
}

type goalResp struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	AmountCent int64      `json:"amount_cent"`
	Amount     string     `json:"amount"`
	SavedCent  int64      `json:"saved_cent"`
	Saved      string     `json:"saved"`
	TargetDate *time.Time `json:"target_date"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toGoalResp(g *models.Goal) goalResp {
	return goalResp{
		ID:         g.ID,
		Name:       g.Name,
		AmountCent: g.AmountCent,
		Amount:     util.FormatCent(g.AmountCent),
		SavedCent:  g.SavedCent,
		Saved:      util.FormatCent(g.SavedCent),
		TargetDate: g.TargetDate,
		CreatedAt:  g.CreatedAt,
	}
}

// validate 校验目标金额、已存金额和目标日期
func (r *goalReq) validate() (amountCent, savedCent int64, target *time.Time, msg string) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return 0, 0, nil, "请填写目标名称"
	}

	amountCent, err := util.AmountToCent(r.Amount)
	if err != nil {
		return 0, 0, nil, "请输入有效金额"
	}

	// 已存金额允许为 0
	savedCent, err = util.NonNegativeToCent(r.Saved)
	if err != nil {
		return 0, 0, nil, "请输入有效的已存金额"
	}

	if r.TargetDate != "" {
		t, ok := parseDate(r.TargetDate)
		if !ok {
			return 0, 0, nil, "日期格式错误"
		}
		target = &t
	}

	return amountCent, savedCent, target, ""
}

func (h *GoalHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req goalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	amountCent, savedCent, target, msg := req.validate()
	if msg != "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	goal := models.Goal{
		UserID:     user.ID,
		Name:       req.Name,
		AmountCent: amountCent,
		SavedCent:  savedCent,
		TargetDate: target,
	}

	if err := h.DB.Create(&goal).Error; err != nil {
		log.Printf("create goal: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	util.Success(c, http.StatusCreated, util.Response{
		"goal": toGoalResp(&goal),
	})
}

func (h *GoalHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var goals []models.Goal
	if err := h.DB.Where("user_id = ?", user.ID).Order("id").Find(&goals).Error; err != nil {
		log.Printf("list goals: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		return
	}

	items := make([]goalResp, 0, len(goals))
	for i := range goals {
		items = append(items, toGoalResp(&goals[i]))
	}

	util.Success(c, http.StatusOK, util.Response{
		"items": items,
	})
}

func (h *GoalHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	var req goalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "参数错误")
		return
	}

	amountCent, savedCent, target, msg := req.validate()
	if msg != "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, msg)
		return
	}

	var goal models.Goal
	if err := h.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "目标不存在")
		} else {
			log.Printf("update goal: query: %v", err)
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "查询失败")
		}
		return
	}

	goal.Name = req.Name
	goal.AmountCent = amountCent
	goal.SavedCent = savedCent
	goal.TargetDate = target

	if err := h.DB.Save(&goal).Error; err != nil {
		log.Printf("update goal: save: %v", err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "保存失败，请重试")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"goal": toGoalResp(&goal),
	})
}

func (h *GoalHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID 不合法")
		return
	}

	res := h.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&models.Goal{})
	if res.Error != nil {
		log.Printf("delete goal: %v", res.Error)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "删除失败")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "目标不存在")
		return
	}

	util.Success(c, http.StatusOK, util.Response{
		"message": "删除成功",
	})
}
