package ingest

import (
	"context"
	"os"
	"path/filepath"
	"time"

	calldomain "github.com/callcenterinsight/insights/internal/call/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConversationConverter imports transcript .txt files as call rows. Imports
// are repeatable: an existing call id is overwritten column for column.
type ConversationConverter struct {
	db   *gorm.DB
	log  *zap.Logger
	repo calldomain.Repository
	dir  string
	loc  *time.Location
}

func NewConversationConverter(db *gorm.DB, log *zap.Logger, repo calldomain.Repository, dir string, loc *time.Location) *ConversationConverter {
	return &ConversationConverter{
		db:   db,
		log:  log.Named("ingest.conversations"),
		repo: repo,
		dir:  dir,
		loc:  loc,
	}
}

func (c *ConversationConverter) Name() string { return "conversations" }

func (c *ConversationConverter) Run(ctx context.Context) (Summary, error) {
	files, err := listConversationFiles(c.dir)
	if err != nil {
		return Summary{}, err
	}
	c.log.Info("scanning conversation files", zap.String("dir", c.dir), zap.Int("files", len(files)))

	var summary Summary
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			c.log.Warn("unreadable transcript", zap.String("file", filepath.Base(path)), zap.Error(err))
			summary.Failed++
			continue
		}

		call, err := ParseTranscript(string(content), c.loc)
		if err != nil {
			c.log.Warn("transcript rejected", zap.String("file", filepath.Base(path)), zap.Error(err))
			summary.Failed++
			continue
		}

		if err := c.repo.Upsert(ctx, c.db, call); err != nil {
			c.log.Warn("call upsert failed", zap.String("call_id", call.CallID), zap.Error(err))
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}
	return summary, nil
}
