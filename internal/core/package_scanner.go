package core

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"cratescope/internal/ports"
	"cratescope/internal/types"
)

// sourceDirName is the conventional source subdirectory beneath a
// package's manifest.
const sourceDirName = "src"

// PackageScanner produces the complete issue list for one package:
// metadata heuristics first, then source findings rooted at the
// package's src directory.
type PackageScanner struct {
	source SourceScanner
}

func NewPackageScanner(rules []Rule) PackageScanner {
	return PackageScanner{source: NewSourceScanner(rules)}
}

// ScanPackage returns all findings for pkg in emission order. The
// metadata checks cannot fail; only a source-tree traversal error is
// surfaced, and the caller decides whether that aborts anything.
func (s PackageScanner) ScanPackage(ctx context.Context, pkg types.Package) ([]types.SecurityIssue, error) {
	var issues []types.SecurityIssue
	issues = checkVersion(pkg, issues)
	issues = checkDependencies(pkg, issues)
	issues = checkBuildScripts(pkg, issues)

	srcDir := filepath.Join(filepath.Dir(pkg.ManifestPath), sourceDirName)
	sourceIssues, err := s.source.ScanTree(srcDir)
	if err != nil {
		return nil, err
	}
	issues = append(issues, sourceIssues...)

	log.Ctx(ctx).Debug().Str("package", pkg.Name).Int("issues", len(issues)).Msg("package scanned")
	return issues, nil
}

var _ ports.ScannerPort = PackageScanner{}
