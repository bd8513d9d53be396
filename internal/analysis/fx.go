package analysis

import (
	"github.com/callcenterinsight/insights/internal/analysis/repository"
	"github.com/callcenterinsight/insights/internal/analysis/service"
	"go.uber.org/fx"
)

var Module = fx.Module("analysis.service",
	fx.Provide(repository.ProvideBaseResult),
	fx.Provide(repository.ProvideIssueResult),
	fx.Provide(repository.ProvideView),
	fx.Provide(service.NewView),
	fx.Provide(service.NewBaseResult),
)
