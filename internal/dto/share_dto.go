package dto

import "time"

// ShareCreateRequest 创建用户/组分享请求
type ShareCreateRequest struct {
	FileID      int64  `json:"file_id" binding:"required"`                       // 文件 ID
	Type        string `json:"type" binding:"required,oneof=user group"`         // 分享类型: user 或 group
	Grantee     string `json:"grantee" binding:"required" example:"alice"`       // 接收者（用户名或组名）
	Permissions int64  `json:"permissions" binding:"omitempty,min=1" example:"1"` // 权限位
}

// ShareUpdateRequest 更新分享权限请求
type ShareUpdateRequest struct {
	ID          int64 `json:"id" binding:"required"`          // 分享 ID
	Permissions int64 `json:"permissions" binding:"required"` // 新权限位
}

// ShareRemoveRequest 删除分享请求
type ShareRemoveRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"` // 分享 ID
}

// ShareListRequest 分享列表请求
type ShareListRequest struct {
	FileID int64 `json:"file_id" form:"file_id"` // 文件 ID，为 0 时列出用户全部分享
}

// ShareDTO 单条分享信息
type ShareDTO struct {
	ID           int64      `json:"id"`
	FileID       int64      `json:"file_id"`
	Type         string     `json:"type"`
	Grantee      string     `json:"grantee,omitempty"`
	Name         string     `json:"name,omitempty"`
	Token        string     `json:"token,omitempty"`
	HasPassword  bool       `json:"has_password"`
	Permissions  int64      `json:"permissions"`
	ViewCount    int64      `json:"view_count"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ShareListResponse 文件分享列表响应，私有分享与公开链接分开返回
type ShareListResponse struct {
	File   *FileDTO    `json:"file"`   // 文件元数据
	Shares []*ShareDTO `json:"shares"` // 用户/组分享
	Links  []*ShareDTO `json:"links"`  // 公开链接
}

// LinkCreateRequest 创建公开链接请求
type LinkCreateRequest struct {
	FileID        int64  `json:"file_id" binding:"required"` // 文件 ID
	Name          string `json:"name"`                       // 链接名称，为空时服务端生成默认名称
	Password      string `json:"password"`                   // 可选访问密码
	ExpireDays    int    `json:"expire_days" binding:"omitempty,min=0"` // 有效天数，0 表示使用服务端默认
	AllowDownload bool   `json:"allow_download"`             // 是否允许下载
}

// LinkUpdateRequest 更新公开链接请求
type LinkUpdateRequest struct {
	ID            int64   `json:"id" binding:"required"` // 链接分享 ID
	Name          *string `json:"name"`                  // 新名称，nil 表示不修改
	Password      *string `json:"password"`              // 新密码，nil 表示不修改，空串表示移除
	ExpireDays    *int    `json:"expire_days"`           // 新有效天数，nil 表示不修改
	AllowDownload *bool   `json:"allow_download"`        // 是否允许下载，nil 表示不修改
}

// LinkCreateResponse 创建公开链接响应
type LinkCreateResponse struct {
	Share *ShareDTO `json:"share"` // 创建的链接分享
	URL   string    `json:"url"`   // 可复制/发送的完整链接
}

// LinkResolveRequest 公开链接访问请求
type LinkResolveRequest struct {
	Password string `json:"password" form:"password"` // 访问密码（若链接设置了密码）
}

// LinkResolveResponse 公开链接访问响应
type LinkResolveResponse struct {
	Name          string    `json:"name,omitempty"` // 链接名称
	File          *FileDTO  `json:"file"`           // 被分享文件的元数据
	AllowDownload bool      `json:"allow_download"`
	SharedAt      time.Time `json:"shared_at"`
}
