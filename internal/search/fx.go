package search

import (
	"github.com/callcenterinsight/insights/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("search.client",
	fx.Provide(func(cfg config.Config, log *zap.Logger) *Client {
		return NewClient(cfg.SearchAPIBaseURL, log)
	}),
)
