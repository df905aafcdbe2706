// Package domain defines business models and repository interfaces
// Package domain 定义业务模型与仓库接口
package domain

import (
	"context"
	"time"
)

// File 同步文件元数据领域模型
type File struct {
	ID        int64     `json:"id"`
	UID       int64     `json:"uid"`  // 所有者 ID
	Path      string    `json:"path"` // 同步目录内的相对路径
	Name      string    `json:"name"` // 展示名称
	Hash      string    `json:"hash"` // 内容哈希
	Size      int64     `json:"size"`
	Mtime     int64     `json:"mtime"` // 客户端修改时间戳（毫秒）
	IsDir     bool      `json:"is_dir"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileRepository 文件元数据持久化接口
type FileRepository interface {
	Create(ctx context.Context, file *File) error
	Update(ctx context.Context, file *File) error
	GetByID(ctx context.Context, id int64, uid int64) (*File, error)
	GetByPath(ctx context.Context, path string, uid int64) (*File, error)
	ListByUID(ctx context.Context, uid int64, limit, offset int) ([]*File, int64, error)
	Delete(ctx context.Context, id int64, uid int64) error
}
