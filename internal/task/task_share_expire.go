package task

import (
	"context"
	"time"

	"github.com/haierkeys/fast-file-share-service/internal/domain"

	"go.uber.org/zap"
)

// ShareExpireTask 过期链接回收任务
// 定期将已过有效期的公开链接标记为失效
type ShareExpireTask struct {
	repo     domain.ShareRepository
	logger   *zap.Logger
	interval time.Duration
	firstRun bool
}

// NewShareExpireTask 创建过期链接回收任务
func NewShareExpireTask(repo domain.ShareRepository, logger *zap.Logger, interval time.Duration) (Task, error) {
	if interval <= 0 {
		// 默认每 10 分钟扫描一次
		interval = 10 * time.Minute
	}

	return &ShareExpireTask{
		repo:     repo,
		logger:   logger,
		interval: interval,
		firstRun: true,
	}, nil
}

// Name 返回任务名称
func (t *ShareExpireTask) Name() string {
	return "ShareExpireTask"
}

// Run 执行回收任务
func (t *ShareExpireTask) Run(ctx context.Context) error {
	status := "scheduled"
	if t.firstRun {
		status = "first-run"
		t.firstRun = false
	}

	count, err := t.repo.RevokeExpired(ctx, time.Now())
	if err != nil {
		t.logger.Error(t.Name()+" failed ["+status+"]: ", zap.Error(err))
		return err
	}

	if count > 0 {
		t.logger.Info(t.Name()+" completed successfully ["+status+"]",
			zap.Int64("revoked", count))
	}

	return nil
}

// LoopInterval 返回执行间隔
func (t *ShareExpireTask) LoopInterval() time.Duration {
	return t.interval
}

// IsStartupRun 是否立即执行一次
func (t *ShareExpireTask) IsStartupRun() bool {
	return true
}
