package ingest

import (
	"context"
	"path/filepath"

	"github.com/callcenterinsight/insights/internal/analysis/domain"
	pkgdb "github.com/callcenterinsight/insights/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BaseResultConverter imports the base insight block of analysis artifacts.
// Existing rows are never touched; a re-run only adds what is missing.
type BaseResultConverter struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.BaseResultRepository
	root string
}

func NewBaseResultConverter(db *gorm.DB, log *zap.Logger, repo domain.BaseResultRepository, root string) *BaseResultConverter {
	return &BaseResultConverter{
		db:   db,
		log:  log.Named("ingest.base_results"),
		repo: repo,
		root: root,
	}
}

func (c *BaseResultConverter) Name() string { return "base-results" }

func (c *BaseResultConverter) Run(ctx context.Context) (Summary, error) {
	files, err := listArtifactFiles(c.root)
	if err != nil {
		return Summary{}, err
	}
	c.log.Info("scanning analysis artifacts", zap.String("root", c.root), zap.Int("files", len(files)))

	var summary Summary
	for _, path := range files {
		name := filepath.Base(path)

		callID, ok := ExtractCallID(name)
		if !ok {
			c.log.Warn("no call id in filename", zap.String("file", name))
			summary.Failed++
			continue
		}

		entry, err := readArtifact(path)
		if err != nil {
			c.log.Warn("artifact rejected", zap.String("file", name), zap.Error(err))
			summary.Failed++
			continue
		}
		if entry.Insights == nil {
			c.log.Warn("artifact has no insights", zap.String("file", name))
			summary.Failed++
			continue
		}
		insights := entry.Insights
		if insights.CallReason == "" || insights.CallReasonDetail == "" {
			c.log.Warn("artifact missing reason fields", zap.String("file", name))
			summary.Failed++
			continue
		}

		exists, err := c.repo.Exists(ctx, c.db, callID)
		if err != nil {
			c.log.Warn("existence check failed", zap.String("call_id", callID), zap.Error(err))
			summary.Failed++
			continue
		}
		if exists {
			summary.Skipped++
			continue
		}

		row := &domain.BaseAnalysisResult{
			CallID:           callID,
			Reason:           insights.CallReason,
			ReasonDetail:     insights.CallReasonDetail,
			RequiresFollowup: insights.IsFollowUpRequired,
		}
		if err := c.repo.Insert(ctx, c.db, row); err != nil {
			// A concurrent run may have inserted the row between the
			// existence check and here; that is a skip, not a failure.
			if pkgdb.IsDuplicateKeyErr(err) {
				summary.Skipped++
				continue
			}
			c.log.Warn("base result insert failed", zap.String("call_id", callID), zap.Error(err))
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}
	return summary, nil
}
