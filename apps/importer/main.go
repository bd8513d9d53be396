package main

import (
	"context"
	"fmt"
	"os"

	"github.com/callcenterinsight/insights/internal/analysis"
	"github.com/callcenterinsight/insights/internal/call"
	"github.com/callcenterinsight/insights/internal/config"
	"github.com/callcenterinsight/insights/internal/ingest"
	"github.com/callcenterinsight/insights/internal/migration"
	"github.com/callcenterinsight/insights/pkg/db"
	"github.com/callcenterinsight/insights/pkg/log"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: importer <conversations|base-results|issue-results|org-metadata>")
		os.Exit(2)
	}
	converter := os.Args[1]

	exitCode := 0
	app := fx.New(
		config.Module,
		log.Module,
		db.Module,
		migration.Module,
		call.Module,
		analysis.Module,
		ingest.Module,
		fx.Invoke(func(lc fx.Lifecycle, runner *ingest.Runner, logger *zap.Logger, shutdowner fx.Shutdowner) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						// Per-file failures are reported in the summary; only
						// an aborted pass fails the process.
						if _, err := runner.Run(context.Background(), converter); err != nil {
							logger.Error("import failed", zap.String("converter", converter), zap.Error(err))
							exitCode = 1
						}
						_ = shutdowner.Shutdown()
					}()
					return nil
				},
			})
		}),
	)
	app.Run()
	os.Exit(exitCode)
}
