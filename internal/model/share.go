package model

import (
	"time"
)

// Share 文件分享表模型
// 用户/组分享使用 Grantee 字段，公开链接使用 Token/Name/PasswordHash 字段
type Share struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UID          int64      `gorm:"column:uid;index:idx_share_uid"`
	FileID       int64      `gorm:"column:file_id;index:idx_share_file"`
	Type         string     `gorm:"column:type;size:16"`
	Grantee      string     `gorm:"column:grantee;size:255"`
	Name         string     `gorm:"column:name;size:255"`
	Token        string     `gorm:"column:token;size:64;index:idx_share_token"`
	PasswordHash string     `gorm:"column:password_hash;size:128"`
	Permissions  int64      `gorm:"column:permissions"`
	Status       int64      `gorm:"column:status;index:idx_share_status"`
	ViewCount    int64      `gorm:"column:view_count"`
	LastViewedAt time.Time  `gorm:"column:last_viewed_at"`
	ExpiresAt    *time.Time `gorm:"column:expires_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

// TableName 指定表名
func (Share) TableName() string {
	return "share"
}
