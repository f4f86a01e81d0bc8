package handler

import (
	"github.com/gin-gonic/gin"

	appborrowing "github.com/xiebiao/library/internal/application/borrowing"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// BorrowingHandler 借阅HTTP处理器
type BorrowingHandler struct {
	createUseCase *appborrowing.CreateBorrowingUseCase
	updateUseCase *appborrowing.UpdateStatusUseCase
	deleteUseCase *appborrowing.DeleteBorrowingUseCase
	queryUseCase  *appborrowing.QueryBorrowingsUseCase
}

// NewBorrowingHandler 创建借阅处理器
func NewBorrowingHandler(
	createUseCase *appborrowing.CreateBorrowingUseCase,
	updateUseCase *appborrowing.UpdateStatusUseCase,
	deleteUseCase *appborrowing.DeleteBorrowingUseCase,
	queryUseCase *appborrowing.QueryBorrowingsUseCase,
) *BorrowingHandler {
	return &BorrowingHandler{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		queryUseCase:  queryUseCase,
	}
}

// CreateBorrowing 借书
// @Summary      借书
// @Description  创建借阅记录并扣减库存，使用悲观锁防止并发借阅扣穿库存
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBorrowingRequest true "借阅信息"
// @Success      200 {object} response.Response{data=dto.BorrowingDetailResponse}
// @Failure      200 {object} response.Response "图书/会员不存在、库存不足、借阅天数非法"
// @Router       /api/v1/borrowings [post]
func (h *BorrowingHandler) CreateBorrowing(c *gin.Context) {
	var req dto.CreateBorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	detail, err := h.createUseCase.Execute(c.Request.Context(), appborrowing.CreateBorrowingRequest{
		BookID:       req.BookID,
		MemberID:     req.MemberID,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBorrowingDetailResponse(detail))
}

// GetBorrowing 查询借阅详情
// @Summary      查询借阅记录
// @Description  返回借阅详情，嵌套图书与会员信息
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅记录ID"
// @Success      200 {object} response.Response{data=dto.BorrowingDetailResponse}
// @Failure      200 {object} response.Response "借阅记录不存在"
// @Router       /api/v1/borrowings/{id} [get]
func (h *BorrowingHandler) GetBorrowing(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.queryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBorrowingDetailResponse(detail))
}

// ListBorrowings 查询借阅列表
// @Summary      借阅列表
// @Tags         借阅
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BorrowingDetailResponse}
// @Router       /api/v1/borrowings [get]
func (h *BorrowingHandler) ListBorrowings(c *gin.Context) {
	details, err := h.queryUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBorrowingDetailResponses(details))
}

// UpdateBorrowingStatus 变更借阅状态(归还)
// @Summary      变更借阅状态
// @Description  status=returned时写入归还时间并归还库存（重复提交不会重复入账）
// @Tags         借阅
// @Accept       json
// @Produce      json
// @Param        id path int true "借阅记录ID"
// @Param        request body dto.UpdateBorrowingStatusRequest true "目标状态"
// @Success      200 {object} response.Response{data=dto.BorrowingDetailResponse}
// @Failure      200 {object} response.Response "借阅记录不存在/状态非法"
// @Router       /api/v1/borrowings/{id} [put]
func (h *BorrowingHandler) UpdateBorrowingStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBorrowingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	detail, err := h.updateUseCase.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBorrowingDetailResponse(detail))
}

// DeleteBorrowing 删除借阅记录
// @Summary      删除借阅记录
// @Description  删除在借记录时同步归还库存（同一事务内完成）
// @Tags         借阅
// @Produce      json
// @Param        id path int true "借阅记录ID"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "借阅记录不存在"
// @Router       /api/v1/borrowings/{id} [delete]
func (h *BorrowingHandler) DeleteBorrowing(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
