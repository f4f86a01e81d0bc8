package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/member"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// memberRepository 会员仓储实现(MySQL)
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建会员仓储
func NewMemberRepository(db *gorm.DB) member.Repository {
	return &memberRepository{db: db}
}

// Create 创建会员
func (r *memberRepository) Create(ctx context.Context, m *member.Member) error {
	model := &MemberModel{
		Name:    m.Name,
		Phone:   m.Phone,
		Email:   m.Email,
		Address: m.Address,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return r.duplicateTarget(err)
		}
		return apperrors.Wrap(err, "创建会员失败")
	}

	m.ID = model.ID
	m.CreatedAt = model.CreatedAt
	m.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找会员
func (r *memberRepository) FindByID(ctx context.Context, id uint) (*member.Member, error) {
	var model MemberModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询会员失败")
	}
	return toMemberEntity(&model), nil
}

// FindByPhone 根据手机号查找会员
func (r *memberRepository) FindByPhone(ctx context.Context, phone string) (*member.Member, error) {
	var model MemberModel
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询会员失败")
	}
	return toMemberEntity(&model), nil
}

// FindByEmail 根据邮箱查找会员
func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*member.Member, error) {
	var model MemberModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, member.ErrMemberNotFound
		}
		return nil, apperrors.Wrap(err, "查询会员失败")
	}
	return toMemberEntity(&model), nil
}

// Update 更新会员信息
func (r *memberRepository) Update(ctx context.Context, m *member.Member) error {
	model := &MemberModel{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
	}

	// Save更新所有字段;Email为nil时写入NULL(支持清空)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return r.duplicateTarget(err)
		}
		return apperrors.Wrap(err, "更新会员失败")
	}

	m.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除会员(物理删除)
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&MemberModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除会员失败")
	}
	if result.RowsAffected == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}

// List 查询全部会员
func (r *memberRepository) List(ctx context.Context) ([]*member.Member, error) {
	var models []MemberModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询会员列表失败")
	}

	members := make([]*member.Member, len(models))
	for i := range models {
		members[i] = toMemberEntity(&models[i])
	}
	return members, nil
}

// duplicateTarget 按唯一索引名区分冲突字段(手机号或邮箱)
func (r *memberRepository) duplicateTarget(err error) error {
	if strings.Contains(err.Error(), "email") {
		return member.ErrEmailDuplicate
	}
	return member.ErrPhoneDuplicate
}

// toMemberEntity GORM模型 → 领域实体
func toMemberEntity(model *MemberModel) *member.Member {
	return &member.Member{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		Email:     model.Email,
		Address:   model.Address,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
