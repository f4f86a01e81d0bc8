package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authorService author.Service
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authorService author.Service) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Description  创建新作者，姓名不允许重复
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      200 {object} response.Response "参数错误/姓名重复"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	var birthDate *time.Time
	if req.BirthDate != "" {
		t, err := dto.ParseDate(req.BirthDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		birthDate = &t
	}

	a, err := h.authorService.CreateAuthor(c.Request.Context(), req.Name, birthDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToAuthorResponse(a))
}

// GetAuthor 查询作者详情
// @Summary      查询作者
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      200 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.authorService.GetAuthor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToAuthorResponse(a))
}

// ListAuthors 查询作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.AuthorResponse}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authorService.ListAuthors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToAuthorResponses(authors))
}

// UpdateAuthor 更新作者
// @Summary      更新作者
// @Description  部分更新：缺省字段不修改；birth_date传空字符串表示清空
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "作者信息"
// @Success      200 {object} response.Response{data=dto.AuthorResponse}
// @Failure      200 {object} response.Response "作者不存在/姓名重复"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	params := author.UpdateParams{Name: req.Name}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			params.ClearBirthDate = true
		} else {
			t, err := dto.ParseDate(*req.BirthDate)
			if err != nil {
				response.Error(c, err)
				return
			}
			params.BirthDate = &t
		}
	}

	a, err := h.authorService.UpdateAuthor(c.Request.Context(), id, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToAuthorResponse(a))
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  作者名下存在图书时拒绝删除
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "作者不存在/名下有图书"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authorService.DeleteAuthor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
