package dao

import (
	"context"

	"github.com/haierkeys/fast-file-share-service/internal/domain"
	"github.com/haierkeys/fast-file-share-service/internal/model"

	"gorm.io/gorm"
)

// fileRepository 实现 domain.FileRepository 接口
type fileRepository struct {
	dao *Dao
}

// NewFileRepository 创建 FileRepository 实例
func NewFileRepository(dao *Dao) domain.FileRepository {
	return &fileRepository{dao: dao}
}

// file 获取文件查询连接
func (r *fileRepository) file() *gorm.DB {
	return r.dao.useModel("File")
}

func (r *fileRepository) toDomain(m *model.File) *domain.File {
	if m == nil {
		return nil
	}
	return &domain.File{
		ID:        m.ID,
		UID:       m.UID,
		Path:      m.Path,
		Name:      m.Name,
		Hash:      m.Hash,
		Size:      m.Size,
		Mtime:     m.Mtime,
		IsDir:     m.IsDir,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *fileRepository) toModel(d *domain.File) *model.File {
	if d == nil {
		return nil
	}
	return &model.File{
		ID:        d.ID,
		UID:       d.UID,
		Path:      d.Path,
		Name:      d.Name,
		Hash:      d.Hash,
		Size:      d.Size,
		Mtime:     d.Mtime,
		IsDir:     d.IsDir,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *fileRepository) Create(ctx context.Context, file *domain.File) error {
	m := r.toModel(file)
	if err := r.file().WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	file.ID = m.ID // 回填生成的 ID
	return nil
}

func (r *fileRepository) Update(ctx context.Context, file *domain.File) error {
	m := r.toModel(file)
	return r.file().WithContext(ctx).
		Where("id = ? AND uid = ?", file.ID, file.UID).
		Updates(map[string]interface{}{
			"name":       m.Name,
			"hash":       m.Hash,
			"size":       m.Size,
			"mtime":      m.Mtime,
			"is_dir":     m.IsDir,
			"updated_at": m.UpdatedAt,
		}).Error
}

func (r *fileRepository) GetByID(ctx context.Context, id int64, uid int64) (*domain.File, error) {
	var m model.File
	err := r.file().WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *fileRepository) GetByPath(ctx context.Context, path string, uid int64) (*domain.File, error) {
	var m model.File
	err := r.file().WithContext(ctx).
		Where("path = ? AND uid = ?", path, uid).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *fileRepository) ListByUID(ctx context.Context, uid int64, limit, offset int) ([]*domain.File, int64, error) {
	var total int64
	if err := r.file().WithContext(ctx).
		Model(&model.File{}).
		Where("uid = ?", uid).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []*model.File
	err := r.file().WithContext(ctx).
		Where("uid = ?", uid).
		Order("path").
		Limit(limit).
		Offset(offset).
		Find(&ms).Error
	if err != nil {
		return nil, 0, err
	}

	var ds []*domain.File
	for _, m := range ms {
		ds = append(ds, r.toDomain(m))
	}
	return ds, total, nil
}

func (r *fileRepository) Delete(ctx context.Context, id int64, uid int64) error {
	return r.file().WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.File{}).Error
}

var _ domain.FileRepository = (*fileRepository)(nil)
