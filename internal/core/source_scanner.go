package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cratescope/internal/types"
)

const sourceExtension = ".rs"

// SourceScanner matches every rule in its catalog against each source
// file beneath a directory root. The catalog is fixed at construction
// and never mutated, so one scanner is safe for concurrent use.
type SourceScanner struct {
	rules []Rule
}

func NewSourceScanner(rules []Rule) SourceScanner {
	return SourceScanner{rules: rules}
}

// ScanTree walks root recursively and returns one issue per (rule, file)
// match, in walk order and catalog order. A root that does not exist
// yields no findings. A file that cannot be read contributes nothing and
// the walk continues; a directory traversal error fails the whole scan.
func (s SourceScanner) ScanTree(root string) ([]types.SecurityIssue, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}
	var issues []types.SecurityIssue
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != sourceExtension {
			return nil
		}
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			log.Warn().Str("file", path).Err(readErr).Msg("skipping unreadable source file")
			return nil
		}
		issues = append(issues, s.scanContent(path, content)...)
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan source tree").
			WithCause(err)
	}
	return issues, nil
}

func (s SourceScanner) scanContent(path string, content []byte) []types.SecurityIssue {
	var issues []types.SecurityIssue
	for _, rule := range s.rules {
		if !rule.Matches(content) {
			continue
		}
		issues = append(issues, types.SecurityIssue{
			Severity:    rule.Severity,
			Description: fmt.Sprintf("%s in %s", rule.Description, path),
			// Empty, not nil: these serialize as [] like metadata findings.
			AffectedVersions: []string{},
		})
	}
	return issues
}
