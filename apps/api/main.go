package main

import (
	"github.com/callcenterinsight/insights/internal/config"
	"github.com/callcenterinsight/insights/internal/migration"
	"github.com/callcenterinsight/insights/internal/server"
	"github.com/callcenterinsight/insights/pkg/db"
	"github.com/callcenterinsight/insights/pkg/log"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}
