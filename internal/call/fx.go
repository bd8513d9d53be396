package call

import (
	"github.com/callcenterinsight/insights/internal/call/repository"
	"github.com/callcenterinsight/insights/internal/call/service"
	"go.uber.org/fx"
)

var Module = fx.Module("call.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
