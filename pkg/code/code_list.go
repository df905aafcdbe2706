package code

// Success codes
// 成功状态码
var (
	Success = NewSuss(0, lang{
		en:    "Success",
		zh_cn: "成功",
	})
)

// Common failure codes
// 通用失败状态码
var (
	Failed = NewError(1, lang{
		en:    "Failed",
		zh_cn: "失败",
	})
	ErrorInvalidParams = NewError(10001, lang{
		en:    "Invalid request parameters",
		zh_cn: "请求参数错误",
	})
	ErrorServerInternal = NewError(10002, lang{
		en:    "Internal server error",
		zh_cn: "服务器内部错误",
	})
	ErrorTooManyRequests = NewError(10003, lang{
		en:    "Too many requests",
		zh_cn: "请求过多",
	})
	ErrorNotFoundAPI = NewError(10004, lang{
		en:    "API not found",
		zh_cn: "接口不存在",
	})
)

// Auth failure codes
// 认证失败状态码
var (
	ErrorNotUserAuthToken = NewError(20001, lang{
		en:    "Missing auth token",
		zh_cn: "缺少认证 Token",
	})
	ErrorInvalidUserAuthToken = NewError(20002, lang{
		en:    "Invalid auth token",
		zh_cn: "认证 Token 无效",
	})
)

// Share failure codes
// 分享失败状态码
var (
	ErrorFileNotFound = NewError(30001, lang{
		en:    "File not found",
		zh_cn: "文件不存在",
	})
	ErrorShareNotFound = NewError(30002, lang{
		en:    "Share not found",
		zh_cn: "分享不存在",
	})
	ErrorShareExpired = NewError(30003, lang{
		en:    "Share link has expired",
		zh_cn: "分享链接已过期",
	})
	ErrorSharePassword = NewError(30004, lang{
		en:    "Share password incorrect",
		zh_cn: "分享密码错误",
	})
	ErrorShareExists = NewError(30005, lang{
		en:    "Share already exists for this grantee",
		zh_cn: "该接收者的分享已存在",
	})
	ErrorShareNotOwner = NewError(30006, lang{
		en:    "Share does not belong to current user",
		zh_cn: "分享不属于当前用户",
	})
)
