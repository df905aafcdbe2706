// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/haierkeys/fast-file-share-service/internal/domain"
	"github.com/haierkeys/fast-file-share-service/internal/dto"
	"github.com/haierkeys/fast-file-share-service/pkg/code"
	"github.com/haierkeys/fast-file-share-service/pkg/logger"
	"github.com/haierkeys/fast-file-share-service/pkg/sharename"
	"github.com/haierkeys/fast-file-share-service/pkg/util"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// DefaultLinkNameTemplate 公开链接默认名称模板
const DefaultLinkNameTemplate = "Link to %s"

// ShareService defines the share business service interface
// ShareService 定义分享业务服务接口
type ShareService interface {
	// ListShares lists shares and public links, for one file or for the
	// whole user when fileID is zero
	// ListShares 列出分享与公开链接，fileID 为 0 时列出用户全部分享
	ListShares(ctx context.Context, uid int64, fileID int64) (*dto.ShareListResponse, error)

	// CreateShare creates a user or group share
	// CreateShare 创建用户或组分享
	CreateShare(ctx context.Context, uid int64, params *dto.ShareCreateRequest) (*dto.ShareDTO, error)

	// UpdateShare updates the permissions of a share
	// UpdateShare 更新分享的权限
	UpdateShare(ctx context.Context, uid int64, params *dto.ShareUpdateRequest) (*dto.ShareDTO, error)

	// RemoveShare removes a share or public link
	// RemoveShare 删除分享或公开链接
	RemoveShare(ctx context.Context, uid int64, id int64) error

	// CreateLink creates a public link, proposing a default name when none given
	// CreateLink 创建公开链接，未提供名称时生成默认名称
	CreateLink(ctx context.Context, uid int64, params *dto.LinkCreateRequest) (*dto.LinkCreateResponse, error)

	// UpdateLink updates name/password/expiry of a public link
	// UpdateLink 更新公开链接的名称/密码/有效期
	UpdateLink(ctx context.Context, uid int64, params *dto.LinkUpdateRequest) (*dto.ShareDTO, error)

	// ResolveLink resolves a public link by token for anonymous access
	// ResolveLink 通过 Token 解析公开链接供匿名访问
	ResolveLink(ctx context.Context, token string, password string) (*dto.LinkResolveResponse, error)

	// LinkURL builds the shareable URL of a public link
	// LinkURL 构建公开链接的可分享 URL
	LinkURL(token string) string

	// RecordView aggregates access statistics in memory
	// RecordView 在内存中聚合访问统计
	RecordView(uid int64, id int64)

	// Shutdown shuts down the service and flushes remaining data
	// Shutdown 关闭服务并同步最后的数据
	Shutdown(ctx context.Context) error
}

// aggStats aggregated statistics
// aggStats 聚合统计
type aggStats struct {
	uid          int64     // User ID // 用户 ID
	viewCount    int64     // View count // 访问计数
	lastViewedAt time.Time // Last viewed at // 最后访问时间
}

// shareService implementation of ShareService interface
// shareService 实现 ShareService 接口
type shareService struct {
	repo      domain.ShareRepository // Share repository // 分享仓库
	fileRepo  domain.FileRepository  // File repository // 文件仓库
	allocator *sharename.Allocator   // Default link name allocator // 默认链接名称分配器
	logger    *zap.Logger            // Logger // 日志器
	config    *ServiceConfig         // Service configuration // 服务配置

	// Statistics buffer
	// 统计缓冲区
	bufferMu    sync.Mutex          // Buffer mutex // 缓冲区互斥锁
	statsBuffer map[int64]*aggStats // Stats buffer // 统计缓冲区
	ticker      *time.Ticker        // Sync ticker // 同步定时器
	stopCh      chan struct{}       // Stop channel // 停止信号
	doneCh      chan struct{}       // Done channel // 完成信号
}

// NewShareService creates ShareService instance
// NewShareService 创建 ShareService 实例
func NewShareService(repo domain.ShareRepository, fileRepo domain.FileRepository, logger *zap.Logger, config *ServiceConfig) ShareService {
	s := &shareService{
		repo:        repo,
		fileRepo:    fileRepo,
		allocator:   sharename.NewAllocator(logger),
		logger:      logger,
		config:      config,
		statsBuffer: make(map[int64]*aggStats),
		ticker:      time.NewTicker(5 * time.Minute),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}

	go s.startFlushLoop()

	return s
}

// toShareDTO converts a domain share to its transport representation
// toShareDTO 将领域分享转换为传输表示
func (s *shareService) toShareDTO(share *domain.Share) *dto.ShareDTO {
	out := &dto.ShareDTO{}
	_ = copier.Copy(out, share)
	out.Type = string(share.Type)
	out.HasPassword = share.PasswordHash != ""
	return out
}

func (s *shareService) toFileDTO(file *domain.File) *dto.FileDTO {
	out := &dto.FileDTO{}
	_ = copier.Copy(out, file)
	return out
}

// ListShares lists shares and public links, for one file or for the
// whole user when fileID is zero
// ListShares 列出分享与公开链接，fileID 为 0 时列出用户全部分享
func (s *shareService) ListShares(ctx context.Context, uid int64, fileID int64) (*dto.ShareListResponse, error) {
	res := &dto.ShareListResponse{
		Shares: make([]*dto.ShareDTO, 0),
		Links:  make([]*dto.ShareDTO, 0),
	}

	var shares []*domain.Share
	var err error

	if fileID > 0 {
		file, ferr := s.fileRepo.GetByID(ctx, fileID, uid)
		if ferr != nil {
			return nil, code.ErrorFileNotFound
		}
		res.File = s.toFileDTO(file)
		shares, err = s.repo.ListByFile(ctx, uid, fileID)
	} else {
		shares, err = s.repo.ListByUID(ctx, uid)
	}
	if err != nil {
		return nil, err
	}

	for _, share := range shares {
		if share.IsLink() {
			res.Links = append(res.Links, s.toShareDTO(share))
		} else {
			res.Shares = append(res.Shares, s.toShareDTO(share))
		}
	}

	return res, nil
}

// CreateShare creates a user or group share
// CreateShare 创建用户或组分享
func (s *shareService) CreateShare(ctx context.Context, uid int64, params *dto.ShareCreateRequest) (*dto.ShareDTO, error) {
	if _, err := s.fileRepo.GetByID(ctx, params.FileID, uid); err != nil {
		return nil, code.ErrorFileNotFound
	}

	// 同一接收者对同一文件只允许一条分享
	existing, err := s.repo.ListByFile(ctx, uid, params.FileID)
	if err != nil {
		return nil, err
	}
	for _, share := range existing {
		if !share.IsLink() && string(share.Type) == params.Type && share.Grantee == params.Grantee {
			return nil, code.ErrorShareExists.WithDetails("grantee: " + params.Grantee)
		}
	}

	permissions := params.Permissions
	if permissions == 0 {
		permissions = domain.PermissionRead
	}

	now := time.Now()
	share := &domain.Share{
		UID:         uid,
		FileID:      params.FileID,
		Type:        domain.ShareType(params.Type),
		Grantee:     params.Grantee,
		Permissions: permissions,
		Status:      domain.ShareStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, share); err != nil {
		return nil, err
	}

	return s.toShareDTO(share), nil
}

// UpdateShare updates the permissions of a share
// UpdateShare 更新分享的权限
func (s *shareService) UpdateShare(ctx context.Context, uid int64, params *dto.ShareUpdateRequest) (*dto.ShareDTO, error) {
	share, err := s.repo.GetByID(ctx, uid, params.ID)
	if err != nil {
		return nil, code.ErrorShareNotFound
	}

	share.Permissions = params.Permissions
	share.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, uid, share); err != nil {
		return nil, err
	}

	return s.toShareDTO(share), nil
}

// RemoveShare removes a share or public link.
// Public links are revoked instead of deleted so view stats survive.
// RemoveShare 删除分享或公开链接。
// 公开链接标记撤销而非删除，保留访问统计。
func (s *shareService) RemoveShare(ctx context.Context, uid int64, id int64) error {
	share, err := s.repo.GetByID(ctx, uid, id)
	if err != nil {
		return code.ErrorShareNotFound
	}
	if share.IsLink() {
		return s.repo.UpdateStatus(ctx, uid, id, domain.ShareStatusRevoked)
	}
	return s.repo.Delete(ctx, uid, id)
}

// defaultLinkName proposes a default name for a new public link of a file.
// Returns "" when allocation fails, in which case the link stays unnamed.
// defaultLinkName 为文件的新公开链接提议默认名称。
// 分配失败时返回空串，此时链接保持未命名。
func (s *shareService) defaultLinkName(ctx context.Context, uid int64, file *domain.File) string {
	template := DefaultLinkNameTemplate
	if s.config != nil && s.config.App.LinkNameTemplate != "" {
		template = s.config.App.LinkNameTemplate
	}
	base := fmt.Sprintf(template, file.Name)

	names, err := s.repo.LinkNamesByFile(ctx, uid, file.ID)
	if err != nil {
		s.logger.Error("failed to list link names", zap.Int64(logger.FieldFileID, file.ID), zap.Error(err))
		return ""
	}

	return s.allocator.Allocate(base, names)
}

// CreateLink creates a public link, proposing a default name when none given
// CreateLink 创建公开链接，未提供名称时生成默认名称
func (s *shareService) CreateLink(ctx context.Context, uid int64, params *dto.LinkCreateRequest) (*dto.LinkCreateResponse, error) {
	file, err := s.fileRepo.GetByID(ctx, params.FileID, uid)
	if err != nil {
		return nil, code.ErrorFileNotFound
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		// 空结果表示名称分配失败，链接保持未命名
		name = s.defaultLinkName(ctx, uid, file)
	}

	var passwordHash string
	if params.Password != "" {
		passwordHash, err = util.GeneratePasswordHash(params.Password)
		if err != nil {
			return nil, err
		}
	}

	var expiresAt *time.Time
	if params.ExpireDays > 0 {
		t := time.Now().AddDate(0, 0, params.ExpireDays)
		expiresAt = &t
	} else if s.config != nil && s.config.App.LinkExpiry != "" {
		if d, err := util.ParseDuration(s.config.App.LinkExpiry); err == nil {
			t := time.Now().Add(d)
			expiresAt = &t
		}
	}

	permissions := domain.PermissionRead
	if params.AllowDownload {
		permissions |= domain.PermissionDownload
	}

	now := time.Now()
	share := &domain.Share{
		UID:          uid,
		FileID:       file.ID,
		Type:         domain.ShareTypeLink,
		Name:         name,
		Token:        strings.ReplaceAll(uuid.NewString(), "-", ""),
		PasswordHash: passwordHash,
		Permissions:  permissions,
		Status:       domain.ShareStatusActive,
		ExpiresAt:    expiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, share); err != nil {
		return nil, err
	}

	s.logger.Info("public link created",
		zap.Int64(logger.FieldUID, uid),
		zap.Int64(logger.FieldFileID, file.ID),
		zap.String(logger.FieldShareName, share.Name))

	return &dto.LinkCreateResponse{
		Share: s.toShareDTO(share),
		URL:   s.LinkURL(share.Token),
	}, nil
}

// UpdateLink updates name/password/expiry of a public link
// UpdateLink 更新公开链接的名称/密码/有效期
func (s *shareService) UpdateLink(ctx context.Context, uid int64, params *dto.LinkUpdateRequest) (*dto.ShareDTO, error) {
	share, err := s.repo.GetByID(ctx, uid, params.ID)
	if err != nil {
		return nil, code.ErrorShareNotFound
	}
	if !share.IsLink() {
		return nil, code.ErrorShareNotFound
	}

	if params.Name != nil {
		share.Name = strings.TrimSpace(*params.Name)
	}

	if params.Password != nil {
		if *params.Password == "" {
			share.PasswordHash = ""
		} else {
			hash, err := util.GeneratePasswordHash(*params.Password)
			if err != nil {
				return nil, err
			}
			share.PasswordHash = hash
		}
	}

	if params.ExpireDays != nil {
		if *params.ExpireDays > 0 {
			t := time.Now().AddDate(0, 0, *params.ExpireDays)
			share.ExpiresAt = &t
		} else {
			share.ExpiresAt = nil
		}
	}

	if params.AllowDownload != nil {
		if *params.AllowDownload {
			share.Permissions |= domain.PermissionDownload
		} else {
			share.Permissions &^= domain.PermissionDownload
		}
	}

	share.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, uid, share); err != nil {
		return nil, err
	}

	return s.toShareDTO(share), nil
}

// ResolveLink resolves a public link by token for anonymous access
// ResolveLink 通过 Token 解析公开链接供匿名访问
func (s *shareService) ResolveLink(ctx context.Context, token string, password string) (*dto.LinkResolveResponse, error) {
	share, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, code.ErrorShareNotFound
	}

	if share.Status != domain.ShareStatusActive {
		return nil, code.ErrorShareNotFound
	}

	if share.IsExpired(time.Now()) {
		return nil, code.ErrorShareExpired
	}

	if share.PasswordHash != "" && !util.CheckPasswordHash(share.PasswordHash, password) {
		return nil, code.ErrorSharePassword
	}

	file, err := s.fileRepo.GetByID(ctx, share.FileID, share.UID)
	if err != nil {
		return nil, code.ErrorFileNotFound
	}

	// In-memory record access statistics (delayed 5 minutes update)
	// 内存记录访问统计 (延迟 5 分钟更新)
	s.RecordView(share.UID, share.ID)

	return &dto.LinkResolveResponse{
		Name:          share.Name,
		File:          s.toFileDTO(file),
		AllowDownload: share.Permissions&domain.PermissionDownload != 0,
		SharedAt:      share.CreatedAt,
	}, nil
}

// LinkURL builds the shareable URL of a public link
// LinkURL 构建公开链接的可分享 URL
func (s *shareService) LinkURL(token string) string {
	base := ""
	if s.config != nil {
		base = strings.TrimRight(s.config.App.PublicBaseURL, "/")
	}
	return base + "/s/" + token
}

// RecordView aggregates access statistics in memory
// RecordView 在内存中聚合访问统计
func (s *shareService) RecordView(uid int64, id int64) {
	s.bufferMu.Lock()
	defer s.bufferMu.Unlock()

	stats, ok := s.statsBuffer[id]
	if !ok {
		stats = &aggStats{
			uid: uid,
		}
		s.statsBuffer[id] = stats
	}
	stats.viewCount++
	stats.lastViewedAt = time.Now()
}

// startFlushLoop starts periodic synchronization goroutine
// startFlushLoop 启动定时同步协程
func (s *shareService) startFlushLoop() {
	defer close(s.doneCh)
	for {
		select {
		case <-s.ticker.C:
			s.flush()
		case <-s.stopCh:
			s.flush()
			return
		}
	}
}

// flush synchronizes incremental totals in memory to database
// flush 将内存中的增量合计同步到数据库
func (s *shareService) flush() {
	s.bufferMu.Lock()
	if len(s.statsBuffer) == 0 {
		s.bufferMu.Unlock()
		return
	}
	tempBuffer := s.statsBuffer
	s.statsBuffer = make(map[int64]*aggStats)
	s.bufferMu.Unlock()

	ctx := context.Background()
	for id, stats := range tempBuffer {
		if err := s.repo.UpdateViewStats(ctx, stats.uid, id, stats.viewCount, stats.lastViewedAt); err != nil {
			s.logger.Error("failed to flush share stats", zap.Int64(logger.FieldShareID, id), zap.Error(err))
		}
	}
}

// Shutdown shuts down the service and flushes remaining data
// Shutdown 关闭服务并同步最后的数据
func (s *shareService) Shutdown(ctx context.Context) error {
	s.ticker.Stop()
	close(s.stopCh)

	// Wait for periodic synchronization goroutine to end (i.e., last flush completed)
	// 等待定时同步协程结束（即最后一次 flush 完成）
	select {
	case <-s.doneCh:
		s.logger.Info("ShareService background flush loop stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("ShareService shutdown timeout, some data might not be flushed")
		return ctx.Err()
	}
}
