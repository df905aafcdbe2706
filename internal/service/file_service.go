package service

import (
	"context"
	"time"

	"github.com/haierkeys/fast-file-share-service/internal/domain"
	"github.com/haierkeys/fast-file-share-service/internal/dto"
	"github.com/haierkeys/fast-file-share-service/pkg/code"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// FileService defines the file metadata service interface
// FileService 定义文件元数据服务接口
type FileService interface {
	// Register registers or refreshes the metadata of a synced file
	// Register 登记或刷新同步文件的元数据
	Register(ctx context.Context, uid int64, params *dto.FileRegisterRequest) (*dto.FileDTO, error)

	// List lists a user's synced files
	// List 列出用户的同步文件
	List(ctx context.Context, uid int64, limit, offset int) ([]*dto.FileDTO, int64, error)

	// Remove removes file metadata
	// Remove 删除文件元数据
	Remove(ctx context.Context, uid int64, id int64) error
}

// fileService 实现 FileService 接口
type fileService struct {
	repo   domain.FileRepository
	logger *zap.Logger
}

// NewFileService 创建 FileService 实例
func NewFileService(repo domain.FileRepository, logger *zap.Logger) FileService {
	return &fileService{
		repo:   repo,
		logger: logger,
	}
}

func (s *fileService) toDTO(file *domain.File) *dto.FileDTO {
	out := &dto.FileDTO{}
	_ = copier.Copy(out, file)
	return out
}

// Register registers or refreshes the metadata of a synced file
// Register 登记或刷新同步文件的元数据
func (s *fileService) Register(ctx context.Context, uid int64, params *dto.FileRegisterRequest) (*dto.FileDTO, error) {
	now := time.Now()

	// 同路径已存在时刷新元数据
	if existing, err := s.repo.GetByPath(ctx, params.Path, uid); err == nil && existing != nil {
		existing.Name = params.Name
		existing.Hash = params.Hash
		existing.Size = params.Size
		existing.Mtime = params.Mtime
		existing.IsDir = params.IsDir
		existing.UpdatedAt = now

		if err := s.repo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return s.toDTO(existing), nil
	}

	file := &domain.File{
		UID:       uid,
		Path:      params.Path,
		Name:      params.Name,
		Hash:      params.Hash,
		Size:      params.Size,
		Mtime:     params.Mtime,
		IsDir:     params.IsDir,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, file); err != nil {
		return nil, err
	}

	return s.toDTO(file), nil
}

// List lists a user's synced files
// List 列出用户的同步文件
func (s *fileService) List(ctx context.Context, uid int64, limit, offset int) ([]*dto.FileDTO, int64, error) {
	files, total, err := s.repo.ListByUID(ctx, uid, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	out := make([]*dto.FileDTO, 0, len(files))
	for _, file := range files {
		out = append(out, s.toDTO(file))
	}
	return out, total, nil
}

// Remove removes file metadata
// Remove 删除文件元数据
func (s *fileService) Remove(ctx context.Context, uid int64, id int64) error {
	if _, err := s.repo.GetByID(ctx, id, uid); err != nil {
		return code.ErrorFileNotFound
	}
	return s.repo.Delete(ctx, id, uid)
}
