// Package output - output.go lays documents out on disk.
//
// Layout:
//
//	<outputDir>/<company>_<role>_<suggested>/<company>_<role>_resume.pdf
//	<outputDir>/<company>_<role>_<suggested>/<company>_<role>_cover_letter.pdf
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/apply-agent/internal/types"
)

// DocumentKind distinguishes the generated document types.
type DocumentKind string

const (
	KindResume      DocumentKind = "resume"
	KindCoverLetter DocumentKind = "cover_letter"
)

// Layout computes output paths for one job posting.
type Layout struct {
	company   string
	role      string
	suggested string
	baseDir   string
}

// NewLayout builds the layout for a posting under the given output directory.
func NewLayout(outputDir string, posting *types.JobPosting) *Layout {
	return &Layout{
		company:   CleanFilename(posting.Company),
		role:      CleanFilename(posting.Title),
		suggested: CleanFilename(SuggestedName(posting.URL)),
		baseDir:   outputDir,
	}
}

// Dir returns the per-job output directory.
func (l *Layout) Dir() string {
	return filepath.Join(l.baseDir, fmt.Sprintf("%s_%s_%s", l.company, l.role, l.suggested))
}

// Path returns the full path for a document of the given kind.
func (l *Layout) Path(kind DocumentKind) string {
	return filepath.Join(l.Dir(), fmt.Sprintf("%s_%s_%s.pdf", l.company, l.role, kind))
}

// WritePDF writes PDF bytes for the given document kind, creating the
// per-job directory as needed. Returns the written path.
func (l *Layout) WritePDF(kind DocumentKind, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("refusing to write empty %s PDF", kind)
	}

	dir := l.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := l.Path(kind)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
