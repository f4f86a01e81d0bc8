package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// CategoryHandler 分类HTTP处理器
type CategoryHandler struct {
	categoryService category.Service
}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler(categoryService category.Service) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory 创建分类
// @Summary      创建分类
// @Description  创建新分类，名称全局唯一
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      200 {object} response.Response "参数错误/名称重复"
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	cat, err := h.categoryService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCategoryResponse(cat))
}

// GetCategory 查询分类详情
// @Summary      查询分类
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      200 {object} response.Response "分类不存在"
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cat, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCategoryResponse(cat))
}

// ListCategories 查询分类列表
// @Summary      分类列表
// @Tags         分类
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.CategoryResponse}
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCategoryResponses(categories))
}

// UpdateCategory 更新分类名称
// @Summary      更新分类
// @Tags         分类
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        request body dto.UpdateCategoryRequest true "分类信息"
// @Success      200 {object} response.Response{data=dto.CategoryResponse}
// @Failure      200 {object} response.Response "分类不存在/名称重复"
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	cat, err := h.categoryService.RenameCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToCategoryResponse(cat))
}

// DeleteCategory 删除分类
// @Summary      删除分类
// @Description  分类下存在图书时拒绝删除
// @Tags         分类
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "分类不存在/分类下有图书"
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
