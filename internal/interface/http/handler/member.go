package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/library/internal/domain/member"
	"github.com/xiebiao/library/internal/interface/http/dto"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/response"
)

// MemberHandler 会员HTTP处理器
type MemberHandler struct {
	memberService member.Service
}

// NewMemberHandler 创建会员处理器
func NewMemberHandler(memberService member.Service) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// CreateMember 创建会员
// @Summary      创建会员
// @Description  创建新会员，手机号唯一，邮箱填写时唯一
// @Tags         会员
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMemberRequest true "会员信息"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      200 {object} response.Response "参数错误/手机号或邮箱重复"
// @Router       /api/v1/members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	m, err := h.memberService.CreateMember(c.Request.Context(), member.CreateParams{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToMemberResponse(m))
}

// GetMember 查询会员详情
// @Summary      查询会员
// @Tags         会员
// @Produce      json
// @Param        id path int true "会员ID"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      200 {object} response.Response "会员不存在"
// @Router       /api/v1/members/{id} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.memberService.GetMember(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToMemberResponse(m))
}

// ListMembers 查询会员列表
// @Summary      会员列表
// @Tags         会员
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.MemberResponse}
// @Router       /api/v1/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.memberService.ListMembers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToMemberResponses(members))
}

// UpdateMember 更新会员
// @Summary      更新会员
// @Description  部分更新：缺省字段不修改；email传空字符串表示清空
// @Tags         会员
// @Accept       json
// @Produce      json
// @Param        id path int true "会员ID"
// @Param        request body dto.UpdateMemberRequest true "会员信息"
// @Success      200 {object} response.Response{data=dto.MemberResponse}
// @Failure      200 {object} response.Response "会员不存在/手机号或邮箱重复"
// @Router       /api/v1/members/{id} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
		return
	}

	m, err := h.memberService.UpdateMember(c.Request.Context(), id, member.UpdateParams{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToMemberResponse(m))
}

// DeleteMember 删除会员
// @Summary      删除会员
// @Description  存在借阅记录时拒绝删除
// @Tags         会员
// @Produce      json
// @Param        id path int true "会员ID"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "会员不存在/存在借阅记录"
// @Router       /api/v1/members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
