package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Converter is one import pass over the artifact tree. Run must isolate
// per-file problems: a malformed file counts against the summary, it never
// aborts the pass. Only storage connectivity or an unreadable root is fatal.
type Converter interface {
	Name() string
	Run(ctx context.Context) (Summary, error)
}

// Summary counts the outcomes of one converter run.
type Summary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

func (s Summary) Total() int {
	return s.Succeeded + s.Skipped + s.Failed
}

// Runner dispatches converters by name.
type Runner struct {
	log        *zap.Logger
	converters map[string]Converter
}

func NewRunner(log *zap.Logger, converters ...Converter) *Runner {
	byName := make(map[string]Converter, len(converters))
	for _, c := range converters {
		byName[c.Name()] = c
	}
	return &Runner{
		log:        log.Named("ingest.runner"),
		converters: byName,
	}
}

func (r *Runner) Names() []string {
	names := make([]string, 0, len(r.converters))
	for name := range r.converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Runner) Run(ctx context.Context, name string) (Summary, error) {
	converter, ok := r.converters[name]
	if !ok {
		return Summary{}, fmt.Errorf("unknown converter %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}

	r.log.Info("converter started", zap.String("converter", name))
	summary, err := converter.Run(ctx)
	if err != nil {
		r.log.Error("converter aborted", zap.String("converter", name), zap.Error(err))
		return summary, err
	}

	r.log.Info("converter finished",
		zap.String("converter", name),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// listArtifactFiles returns every *_analysis.json directly under the date
// directories of root. Files at the root level itself are ignored, matching
// the layout the transcription pipeline produces.
func listArtifactFiles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read artifact root %s: %w", root, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(root, entry.Name(), "*_analysis.json"))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// listConversationFiles returns every .txt file under root, recursively.
func listConversationFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk conversation root %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}
