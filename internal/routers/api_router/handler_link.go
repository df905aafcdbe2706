package api_router

import (
	"context"

	"github.com/haierkeys/fast-file-share-service/internal/app"
	"github.com/haierkeys/fast-file-share-service/internal/dto"
	"github.com/haierkeys/fast-file-share-service/internal/middleware"
	pkgapp "github.com/haierkeys/fast-file-share-service/pkg/app"
	"github.com/haierkeys/fast-file-share-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LinkHandler 公开链接 API 路由处理器
type LinkHandler struct {
	*Handler
}

// NewLinkHandler 创建 LinkHandler 实例
func NewLinkHandler(a *app.App) *LinkHandler {
	return &LinkHandler{Handler: NewHandler(a)}
}

// Create creates a public link for a file
// Create 为文件创建公开链接
// 未提供名称时服务端按模板生成默认名称
func (h *LinkHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.LinkCreateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	ctx := c.Request.Context()

	linkRes, err := h.App.ShareService.CreateLink(ctx, uid, params)
	if err != nil {
		if cObj, ok := err.(*code.Code); ok {
			response.ToResponse(cObj)
		} else {
			h.logError(ctx, "LinkHandler.Create", err)
			response.ToResponse(code.Failed.WithDetails(err.Error()))
		}
		return
	}

	response.ToResponse(code.Success.WithData(linkRes))
}

// Update updates name/password/expiry of a public link
// Update 更新公开链接的名称/密码/有效期
func (h *LinkHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.LinkUpdateRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	ctx := c.Request.Context()

	shareDTO, err := h.App.ShareService.UpdateLink(ctx, uid, params)
	if err != nil {
		if cObj, ok := err.(*code.Code); ok {
			response.ToResponse(cObj)
		} else {
			h.logError(ctx, "LinkHandler.Update", err)
			response.ToResponse(code.Failed.WithDetails(err.Error()))
		}
		return
	}

	response.ToResponse(code.Success.WithData(shareDTO))
}

// Resolve resolves a public link by token for anonymous access
// Resolve 通过 Token 解析公开链接供匿名访问
// 密码可通过查询参数或请求头传递
func (h *LinkHandler) Resolve(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	token := c.Param("token")
	if token == "" {
		response.ToResponse(code.ErrorShareNotFound)
		return
	}

	params := &dto.LinkResolveRequest{}
	_, _ = pkgapp.BindAndValid(c, params)

	password := params.Password
	if password == "" {
		password = c.GetHeader("Share-Password")
	}

	ctx := c.Request.Context()

	linkRes, err := h.App.ShareService.ResolveLink(ctx, token, password)
	if err != nil {
		if cObj, ok := err.(*code.Code); ok {
			response.ToResponse(cObj)
		} else {
			h.logError(ctx, "LinkHandler.Resolve", err)
			response.ToResponse(code.Failed.WithDetails(err.Error()))
		}
		return
	}

	response.ToResponse(code.Success.WithData(linkRes))
}

func (h *LinkHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
