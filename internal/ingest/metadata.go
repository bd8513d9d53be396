package ingest

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/callcenterinsight/insights/internal/analysis/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrgMetadataConverter fills base_analysis_organization_metadata from the
// CRM lookup string in analysis artifacts. The column is written once: rows
// whose metadata is already set are never overwritten.
type OrgMetadataConverter struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.BaseResultRepository
	root string
}

func NewOrgMetadataConverter(db *gorm.DB, log *zap.Logger, repo domain.BaseResultRepository, root string) *OrgMetadataConverter {
	return &OrgMetadataConverter{
		db:   db,
		log:  log.Named("ingest.org_metadata"),
		repo: repo,
		root: root,
	}
}

func (c *OrgMetadataConverter) Name() string { return "org-metadata" }

func (c *OrgMetadataConverter) Run(ctx context.Context) (Summary, error) {
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
		if entry.OrganizationMetadata == nil || *entry.OrganizationMetadata == "" {
			summary.Skipped++
			continue
		}

		metadata := ParseOrganizationMetadata(*entry.OrganizationMetadata)
		if metadata.Empty() {
			summary.Skipped++
			continue
		}

		baseExists, err := c.repo.Exists(ctx, c.db, callID)
		if err != nil {
			c.log.Warn("base existence check failed", zap.String("call_id", callID), zap.Error(err))
			summary.Failed++
			continue
		}
		if !baseExists {
			c.log.Warn("base result missing, metadata skipped", zap.String("call_id", callID))
			summary.Skipped++
			continue
		}

		populated, err := c.repo.HasOrganizationMetadata(ctx, c.db, callID)
		if err != nil {
			c.log.Warn("metadata check failed", zap.String("call_id", callID), zap.Error(err))
			summary.Failed++
			continue
		}
		if populated {
			summary.Skipped++
			continue
		}

		encoded, err := json.Marshal(metadata)
		if err != nil {
			summary.Failed++
			continue
		}
		if err := c.repo.SetOrganizationMetadata(ctx, c.db, callID, datatypes.JSON(encoded)); err != nil {
			c.log.Warn("metadata update failed", zap.String("call_id", callID), zap.Error(err))
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}
	return summary, nil
}
