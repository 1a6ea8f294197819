package worker

import (
	"context"
	"time"

	"github.com/denzstore/storepanel/internal/logger"
	"go.uber.org/zap"
)

type ConfigProvider interface {
	Refresh(ctx context.Context) error
}

// ConfigRefresher is worker performs periodic credentials refresh
type ConfigRefresher struct {
	provider ConfigProvider
	interval time.Duration
}

// NewConfigRefresher creates new config refresher
func NewConfigRefresher(provider ConfigProvider, interval time.Duration) *ConfigRefresher {
	return &ConfigRefresher{
		provider: provider,
		interval: interval,
	}
}

// Run refreshes credentials once at start and then on every tick until
// the context is cancelled. A failed refresh keeps the previous
// credentials, so errors are only logged.
func (cr *ConfigRefresher) Run(ctx context.Context) {
	if err := cr.provider.Refresh(ctx); err != nil {
		logger.Log.Error("initial config refresh failed", zap.Error(err))
	}

	ticker := time.NewTicker(cr.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("config refresher is done")
			return
		case <-ticker.C:
			if err := cr.provider.Refresh(ctx); err != nil {
				logger.Log.Error("config refresh failed", zap.Error(err))
			}
		}
	}
}
