package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrShareRevoked = errors.New("share has been revoked")
	ErrShareExpired = errors.New("share has expired")
)

// ShareType 分享类型
type ShareType string

const (
	// ShareTypeUser 分享给单个用户
	ShareTypeUser ShareType = "user"
	// ShareTypeGroup 分享给用户组
	ShareTypeGroup ShareType = "group"
	// ShareTypeLink 公开链接分享
	ShareTypeLink ShareType = "link"
)

// 分享权限位
const (
	PermissionRead     int64 = 1
	PermissionWrite    int64 = 1 << 1
	PermissionShare    int64 = 1 << 2
	PermissionDelete   int64 = 1 << 3
	PermissionDownload int64 = 1 << 4
)

// 分享状态
const (
	ShareStatusActive  int64 = 1
	ShareStatusRevoked int64 = 2
)

// Share 文件分享领域模型
// 用户/组分享填 Grantee，公开链接填 Token，Name 为链接的展示名称
type Share struct {
	ID           int64      `json:"id"`
	UID          int64      `json:"uid"`     // 创建者 ID
	FileID       int64      `json:"file_id"` // 被分享的文件 ID
	Type         ShareType  `json:"type"`
	Grantee      string     `json:"grantee,omitempty"` // 接收者（用户名或组名）
	Name         string     `json:"name,omitempty"`    // 公开链接展示名称，可为空
	Token        string     `json:"token,omitempty"`   // 公开链接 Token
	PasswordHash string     `json:"-"`                 // 可选访问密码哈希
	Permissions  int64      `json:"permissions"`
	Status       int64      `json:"status"`         // 状态: 1-有效, 2-已撤销
	ViewCount    int64      `json:"view_count"`     // 统计：访问次数
	LastViewedAt time.Time  `json:"last_viewed_at"` // 统计：最后访问时间
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsLink reports whether the share is a public link
// IsLink 判断分享是否为公开链接
func (s *Share) IsLink() bool {
	return s.Type == ShareTypeLink
}

// IsExpired reports whether the share has passed its expiry
// IsExpired 判断分享是否已过期
func (s *Share) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

// ShareRepository 文件分享持久化接口
type ShareRepository interface {
	Create(ctx context.Context, share *Share) error
	GetByID(ctx context.Context, uid int64, id int64) (*Share, error)
	GetByToken(ctx context.Context, token string) (*Share, error)
	Update(ctx context.Context, uid int64, share *Share) error
	UpdateStatus(ctx context.Context, uid int64, id int64, status int64) error
	UpdateViewStats(ctx context.Context, uid int64, id int64, viewCountIncr int64, lastViewedAt time.Time) error
	Delete(ctx context.Context, uid int64, id int64) error
	ListByFile(ctx context.Context, uid int64, fileID int64) ([]*Share, error)
	ListByUID(ctx context.Context, uid int64) ([]*Share, error)

	// LinkNamesByFile returns the names of all active public links of a
	// file, one entry per link; unnamed links yield an empty string
	// LinkNamesByFile 返回文件所有有效公开链接的名称，每个链接一项，
	// 未命名链接返回空字符串
	LinkNamesByFile(ctx context.Context, uid int64, fileID int64) ([]string, error)

	// RevokeExpired marks all active shares past expiry as revoked
	// RevokeExpired 将所有已过期的有效分享标记为已撤销
	RevokeExpired(ctx context.Context, now time.Time) (int64, error)
}
