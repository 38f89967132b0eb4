package cron_feature

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bbt-connect/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CleanupService periodically purges generated report artifacts from the
// export directory once they pass the configured retention
type CleanupService interface {
	Start() error
	Stop()
	RunOnce() (int, error)
}

type CleanupServiceImpl struct {
	exportDir string
	retention time.Duration
	schedule  string
	logger    *zap.Logger

	scheduler *cron.Cron
}

func NewCleanupService(cfg *config.Config, logger *zap.Logger) (CleanupService, error) {
	if _, err := cron.ParseStandard(cfg.CleanupSchedule); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule: %w", err)
	}

	return &CleanupServiceImpl{
		exportDir: cfg.ExportDir,
		retention: time.Duration(cfg.ExportRetention) * 24 * time.Hour,
		schedule:  cfg.CleanupSchedule,
		logger:    logger,
	}, nil
}

func (s *CleanupServiceImpl) Start() error {
	s.scheduler = cron.New()
	_, err := s.scheduler.AddFunc(s.schedule, func() {
		removed, err := s.RunOnce()
		if err != nil {
			s.logger.Warn("export cleanup failed", zap.Error(err))
			return
		}
		if removed > 0 {
			s.logger.Info("export cleanup finished", zap.Int("removed", removed))
		}
	})
	if err != nil {
		return err
	}
	s.scheduler.Start()
	return nil
}

func (s *CleanupServiceImpl) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// RunOnce removes stale artifacts and reports how many were deleted
func (s *CleanupServiceImpl) RunOnce() (int, error) {
	entries, err := os.ReadDir(s.exportDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-s.retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.exportDir, entry.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}

// RegisterCleanup hooks the scheduler into the fx application lifecycle
func RegisterCleanup(lc fx.Lifecycle, svc CleanupService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return svc.Start()
		},
		OnStop: func(ctx context.Context) error {
			svc.Stop()
			return nil
		},
	})
}
