package ingest

import (
	"fmt"
	"time"

	analysisdomain "github.com/callcenterinsight/insights/internal/analysis/domain"
	calldomain "github.com/callcenterinsight/insights/internal/call/domain"
	"github.com/callcenterinsight/insights/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	Cfg    config.IngestConfig
	Calls  calldomain.Repository
	Bases  analysisdomain.BaseResultRepository
	Issues analysisdomain.IssueResultRepository
}

func NewRunnerFromConfig(p Params) (*Runner, error) {
	loc, err := time.LoadLocation(p.Cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", p.Cfg.Timezone, err)
	}

	return NewRunner(p.Log,
		NewConversationConverter(p.DB, p.Log, p.Calls, p.Cfg.ConversationsDir, loc),
		NewBaseResultConverter(p.DB, p.Log, p.Bases, p.Cfg.RootDir),
		NewIssueResultConverter(p.DB, p.Log, p.Issues, p.Bases, p.Cfg.RootDir),
		NewOrgMetadataConverter(p.DB, p.Log, p.Bases, p.Cfg.RootDir),
	), nil
}

var Module = fx.Module("ingest",
	fx.Provide(config.LoadIngestConfig),
	fx.Provide(NewRunnerFromConfig),
)
