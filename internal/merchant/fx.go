package merchant

import (
	"github.com/callcenterinsight/insights/internal/merchant/repository"
	"github.com/callcenterinsight/insights/internal/merchant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("merchant.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
