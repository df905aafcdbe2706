package task

import (
	"time"

	"github.com/haierkeys/fast-file-share-service/internal/domain"
	"github.com/haierkeys/fast-file-share-service/pkg/safe_close"
	"github.com/haierkeys/fast-file-share-service/pkg/util"

	"go.uber.org/zap"
)

// Manager 任务管理器,负责创建和管理所有任务
type Manager struct {
	scheduler *Scheduler
	logger    *zap.Logger

	shareRepo domain.ShareRepository
	// ShareExpireInterval 过期链接扫描间隔，支持格式：10m（分钟）、1h（小时）
	shareExpireInterval string
}

// NewManager 创建任务管理器
func NewManager(logger *zap.Logger, sc *safe_close.SafeClose, shareRepo domain.ShareRepository, shareExpireInterval string) *Manager {
	return &Manager{
		scheduler:           NewScheduler(logger, sc),
		logger:              logger,
		shareRepo:           shareRepo,
		shareExpireInterval: shareExpireInterval,
	}
}

// RegisterTasks 注册所有任务
func (m *Manager) RegisterTasks() error {
	var interval time.Duration
	if m.shareExpireInterval != "" {
		d, err := util.ParseDuration(m.shareExpireInterval)
		if err != nil {
			m.logger.Warn("invalid share expire interval, using default", zap.Error(err))
		} else {
			interval = d
		}
	}

	expireTask, err := NewShareExpireTask(m.shareRepo, m.logger, interval)
	if err != nil {
		m.logger.Warn("failed to create share expire task", zap.Error(err))
		return err
	}
	m.scheduler.AddTask(expireTask)

	return nil
}

// Start 启动所有已注册的任务
func (m *Manager) Start() {
	m.scheduler.Start()
}
