package dto

import "time"

// FileDTO 文件元数据信息
type FileDTO struct {
	ID        int64     `json:"id"`
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	Hash      string    `json:"hash"`
	Size      int64     `json:"size"`
	Mtime     int64     `json:"mtime"`
	IsDir     bool      `json:"is_dir"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileRegisterRequest 登记同步文件元数据请求
type FileRegisterRequest struct {
	Path  string `json:"path" binding:"required"` // 同步目录内的相对路径
	Name  string `json:"name" binding:"required"` // 展示名称
	Hash  string `json:"hash"`                    // 内容哈希
	Size  int64  `json:"size"`
	Mtime int64  `json:"mtime"` // 客户端修改时间戳（毫秒）
	IsDir bool   `json:"is_dir"`
}

// FileListRequest 文件列表请求
type FileListRequest struct {
	Page     int `json:"page" form:"page"`         // 页码
	PageSize int `json:"pageSize" form:"pageSize"` // 每页数量
}
