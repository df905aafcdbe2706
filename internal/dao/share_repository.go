package dao

import (
	"context"
	"time"

	"github.com/haierkeys/fast-file-share-service/internal/domain"
	"github.com/haierkeys/fast-file-share-service/internal/model"

	"gorm.io/gorm"
)

// shareRepository 实现 domain.ShareRepository 接口
type shareRepository struct {
	dao *Dao
}

// NewShareRepository 创建 ShareRepository 实例
func NewShareRepository(dao *Dao) domain.ShareRepository {
	return &shareRepository{dao: dao}
}

// share 获取分享查询连接
func (r *shareRepository) share() *gorm.DB {
	return r.dao.useModel("Share")
}

func (r *shareRepository) toDomain(m *model.Share) *domain.Share {
	if m == nil {
		return nil
	}
	return &domain.Share{
		ID:           m.ID,
		UID:          m.UID,
		FileID:       m.FileID,
		Type:         domain.ShareType(m.Type),
		Grantee:      m.Grantee,
		Name:         m.Name,
		Token:        m.Token,
		PasswordHash: m.PasswordHash,
		Permissions:  m.Permissions,
		Status:       m.Status,
		ViewCount:    m.ViewCount,
		LastViewedAt: m.LastViewedAt,
		ExpiresAt:    m.ExpiresAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *shareRepository) toModel(d *domain.Share) *model.Share {
	if d == nil {
		return nil
	}
	return &model.Share{
		ID:           d.ID,
		UID:          d.UID,
		FileID:       d.FileID,
		Type:         string(d.Type),
		Grantee:      d.Grantee,
		Name:         d.Name,
		Token:        d.Token,
		PasswordHash: d.PasswordHash,
		Permissions:  d.Permissions,
		Status:       d.Status,
		ViewCount:    d.ViewCount,
		LastViewedAt: d.LastViewedAt,
		ExpiresAt:    d.ExpiresAt,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *shareRepository) Create(ctx context.Context, share *domain.Share) error {
	m := r.toModel(share)
	if err := r.share().WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	share.ID = m.ID // 回填生成的 ID
	return nil
}

func (r *shareRepository) GetByID(ctx context.Context, uid int64, id int64) (*domain.Share, error) {
	var m model.Share
	err := r.share().WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *shareRepository) GetByToken(ctx context.Context, token string) (*domain.Share, error) {
	var m model.Share
	err := r.share().WithContext(ctx).
		Where("token = ? AND type = ?", token, string(domain.ShareTypeLink)).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *shareRepository) Update(ctx context.Context, uid int64, share *domain.Share) error {
	m := r.toModel(share)
	return r.share().WithContext(ctx).
		Where("id = ? AND uid = ?", share.ID, uid).
		Updates(map[string]interface{}{
			"grantee":       m.Grantee,
			"name":          m.Name,
			"password_hash": m.PasswordHash,
			"permissions":   m.Permissions,
			"expires_at":    m.ExpiresAt,
			"updated_at":    time.Now(),
		}).Error
}

func (r *shareRepository) UpdateStatus(ctx context.Context, uid int64, id int64, status int64) error {
	return r.share().WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *shareRepository) UpdateViewStats(ctx context.Context, uid int64, id int64, viewCountIncr int64, lastViewedAt time.Time) error {
	return r.share().WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"view_count":     gorm.Expr("view_count + ?", viewCountIncr),
			"last_viewed_at": lastViewedAt,
		}).Error
}

func (r *shareRepository) Delete(ctx context.Context, uid int64, id int64) error {
	return r.share().WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Share{}).Error
}

func (r *shareRepository) ListByFile(ctx context.Context, uid int64, fileID int64) ([]*domain.Share, error) {
	var ms []*model.Share
	err := r.share().WithContext(ctx).
		Where("uid = ? AND file_id = ? AND status = ?", uid, fileID, domain.ShareStatusActive).
		Order("id").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	var ds []*domain.Share
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

func (r *shareRepository) ListByUID(ctx context.Context, uid int64) ([]*domain.Share, error) {
	var ms []*model.Share
	err := r.share().WithContext(ctx).
		Where("uid = ? AND status = ?", uid, domain.ShareStatusActive).
		Order("id").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	var ds []*domain.Share
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, nil
}

func (r *shareRepository) LinkNamesByFile(ctx context.Context, uid int64, fileID int64) ([]string, error) {
	var names []string
	err := r.share().WithContext(ctx).
		Model(&model.Share{}).
		Where("uid = ? AND file_id = ? AND type = ? AND status = ?",
			uid, fileID, string(domain.ShareTypeLink), domain.ShareStatusActive).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r *shareRepository) RevokeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.share().WithContext(ctx).
		Model(&model.Share{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", domain.ShareStatusActive, now).
		Updates(map[string]interface{}{
			"status":     domain.ShareStatusRevoked,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}

var _ domain.ShareRepository = (*shareRepository)(nil)
