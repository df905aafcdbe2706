package api_router

import (
	"context"

	"github.com/haierkeys/fast-file-share-service/internal/app"
	"github.com/haierkeys/fast-file-share-service/internal/dto"
	"github.com/haierkeys/fast-file-share-service/internal/middleware"
	pkgapp "github.com/haierkeys/fast-file-share-service/pkg/app"
	"github.com/haierkeys/fast-file-share-service/pkg/code"
	"github.com/haierkeys/fast-file-share-service/pkg/convert"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FileHandler 文件元数据 API 路由处理器
type FileHandler struct {
	*Handler
}

// NewFileHandler 创建 FileHandler 实例
func NewFileHandler(a *app.App) *FileHandler {
	return &FileHandler{Handler: NewHandler(a)}
}

// Register registers or refreshes the metadata of a synced file
// Register 登记或刷新同步文件的元数据
func (h *FileHandler) Register(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.FileRegisterRequest{}

	// 参数绑定和验证
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()).WithData(errs.MapsToString()))
		return
	}

	uid := pkgapp.GetUID(c)
	ctx := c.Request.Context()

	fileDTO, err := h.App.FileService.Register(ctx, uid, params)
	if err != nil {
		if cObj, ok := err.(*code.Code); ok {
			response.ToResponse(cObj)
		} else {
			h.logError(ctx, "FileHandler.Register", err)
			response.ToResponse(code.Failed.WithDetails(err.Error()))
		}
		return
	}

	response.ToResponse(code.Success.WithData(fileDTO))
}

// List lists the user's synced files
// List 列出用户的同步文件
func (h *FileHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	uid := pkgapp.GetUID(c)
	ctx := c.Request.Context()

	cfg := h.App.Config()
	page := pkgapp.GetPage(c)
	pageSize := pkgapp.GetPageSizeWithConfig(c, pkgapp.PaginationConfig{
		DefaultPageSize: cfg.App.DefaultPageSize,
		MaxPageSize:     cfg.App.MaxPageSize,
	})
	offset := pkgapp.GetPageOffset(page, pageSize)

	files, total, err := h.App.FileService.List(ctx, uid, pageSize, offset)
	if err != nil {
		h.logError(ctx, "FileHandler.List", err)
		response.ToResponse(code.Failed.WithDetails(err.Error()))
		return
	}

	response.ToResponseList(code.Success, files, int(total))
}

// Remove removes file metadata
// Remove 删除文件元数据
func (h *FileHandler) Remove(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	id := convert.StrTo(c.Query("id")).MustInt64()
	if id <= 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("id is required"))
		return
	}

	uid := pkgapp.GetUID(c)
	ctx := c.Request.Context()

	if err := h.App.FileService.Remove(ctx, uid, id); err != nil {
		if cObj, ok := err.(*code.Code); ok {
			response.ToResponse(cObj)
		} else {
			h.logError(ctx, "FileHandler.Remove", err)
			response.ToResponse(code.Failed.WithDetails(err.Error()))
		}
		return
	}

	response.ToResponse(code.Success)
}

func (h *FileHandler) logError(ctx context.Context, method string, err error) {
	traceID := middleware.GetTraceID(ctx)
	h.App.Logger().Error(method,
		zap.Error(err),
		zap.String("traceId", traceID),
	)
}
