package service

// ServiceConfig 服务层配置，由应用容器注入
type ServiceConfig struct {
	App AppSettings
}

// AppSettings 服务层关心的应用设置
type AppSettings struct {
	// LinkNameTemplate 公开链接默认名称模板，%s 会被替换为文件展示名称
	LinkNameTemplate string
	// LinkExpiry 公开链接默认有效期，支持格式：7d（天）、24h（小时），为空表示不过期
	LinkExpiry string
	// PublicBaseURL 对外访问地址，用于拼接可复制的完整链接
	PublicBaseURL string
}
