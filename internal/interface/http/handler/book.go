package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	bookService book.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(bookService book.Service) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  创建新图书，书名唯一，ISBN填写时唯一，作者/分类必须已存在
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookDetailResponse}
// @Failure      200 {object} response.Response "参数错误/书名或ISBN重复/作者或分类不存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	detail, err := h.bookService.CreateBook(c.Request.Context(), book.CreateParams{
		Title:      req.Title,
		Year:       req.Year,
		ISBN:       req.ISBN,
		Stock:      req.Stock,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBookDetailResponse(detail))
}

// GetBook 查询图书详情
// @Summary      查询图书
// @Description  返回图书详情，嵌套作者与分类信息
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookDetailResponse}
// @Failure      200 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	detail, err := h.bookService.GetBookDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBookDetailResponse(detail))
}

// ListBooks 查询图书列表
// @Summary      图书列表
// @Description  列表不展开作者/分类，只返回外键ID
// @Tags         图书
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.bookService.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBookResponses(books))
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  部分更新：缺省字段不修改；isbn传空字符串表示清空
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookDetailResponse}
// @Failure      200 {object} response.Response "图书不存在/ISBN重复/库存为负"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	detail, err := h.bookService.UpdateBook(c.Request.Context(), id, book.UpdateParams{
		Title:      req.Title,
		Year:       req.Year,
		ISBN:       req.ISBN,
		Stock:      req.Stock,
		AuthorID:   req.AuthorID,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBookDetailResponse(detail))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  存在借阅记录（含已归还的历史记录）时拒绝删除
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "图书不存在/存在借阅记录"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.bookService.DeleteBook(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
