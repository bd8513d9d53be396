package ingest

import (
	"context"
	"path/filepath"

	"github.com/callcenterinsight/insights/internal/analysis/domain"
	pkgdb "github.com/callcenterinsight/insights/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IssueResultConverter imports the issue block of analysis artifacts. Only
// artifacts flagged with an issue_sub_category produce rows, and only when
// the matching base result already exists.
type IssueResultConverter struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.IssueResultRepository
	bases domain.BaseResultRepository
	root  string
}

func NewIssueResultConverter(db *gorm.DB, log *zap.Logger, repo domain.IssueResultRepository, bases domain.BaseResultRepository, root string) *IssueResultConverter {
	return &IssueResultConverter{
		db:    db,
		log:   log.Named("ingest.issue_results"),
		repo:  repo,
		bases: bases,
		root:  root,
	}
}

func (c *IssueResultConverter) Name() string { return "issue-results" }

func (c *IssueResultConverter) Run(ctx context.Context) (Summary, error) {
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

		// Calls without an issue category are normal, not an error.
		if insights.IssueSubCategory == nil {
			summary.Skipped++
			continue
		}

		if *insights.IssueSubCategory == "" || insights.SubIssueType == "" || insights.UrgencyLevel == "" {
			c.log.Warn("artifact missing issue fields", zap.String("file", name))
			summary.Failed++
			continue
		}

		churnRisk := 0
		if insights.ChurnRisk != nil {
			churnRisk = *insights.ChurnRisk
		}
		if churnRisk < domain.ChurnRiskMin || churnRisk > domain.ChurnRiskMax {
			c.log.Warn("churn risk out of range", zap.String("file", name), zap.Int("churn_risk", churnRisk))
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

		baseExists, err := c.bases.Exists(ctx, c.db, callID)
		if err != nil {
			c.log.Warn("base existence check failed", zap.String("call_id", callID), zap.Error(err))
			summary.Failed++
			continue
		}
		if !baseExists {
			c.log.Warn("base result missing, issue skipped", zap.String("call_id", callID))
			summary.Skipped++
			continue
		}

		row := &domain.IssueAnalysisResult{
			CallID:                        callID,
			SubCategory:                   *insights.IssueSubCategory,
			SubIssueType:                  insights.SubIssueType,
			ChurnRisk:                     churnRisk,
			UrgencyLevel:                  insights.UrgencyLevel,
			RelatedWithPreviousCall:       insights.RelatedWithPreviousCall,
			RelatedWithPreviousCallDetail: insights.RelatedWithPreviousCallDetail,
		}
		if err := c.repo.Insert(ctx, c.db, row); err != nil {
			if pkgdb.IsDuplicateKeyErr(err) {
				summary.Skipped++
				continue
			}
			c.log.Warn("issue result insert failed", zap.String("call_id", callID), zap.Error(err))
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}
	return summary, nil
}
