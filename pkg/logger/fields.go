package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldUID 用户 ID 字段
	FieldUID = "uid"

	// FieldFileID 文件 ID 字段
	FieldFileID = "fileId"

	// FieldShareID 分享 ID 字段
	FieldShareID = "shareId"

	// FieldToken 公开链接 Token 字段
	FieldToken = "token"

	// FieldShareName 分享名称字段
	FieldShareName = "shareName"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldError 错误信息字段
	FieldError = "error"
)
