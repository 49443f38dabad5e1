package core

import (
	"context"
	"sync"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cratescope/internal/ports"
	"cratescope/internal/types"
)

// Analyzer orchestrates one full dependency analysis: resolve the
// manifest, build the adjacency map, and scan every resolved package.
type Analyzer struct {
	Metadata ports.MetadataPort
	Scanner  ports.ScannerPort
}

func NewAnalyzer(metadata ports.MetadataPort, scanner ports.ScannerPort) Analyzer {
	return Analyzer{Metadata: metadata, Scanner: scanner}
}

type scanResult struct {
	name   string
	issues []types.SecurityIssue
}

// Analyze produces the complete report for the manifest. Package scans
// run concurrently, one goroutine per package; per-package scan failures
// degrade to zero findings for that package rather than failing the run.
func (a Analyzer) Analyze(ctx context.Context, manifestPath string) (types.DependencyAnalysis, error) {
	assert.NotEmpty(ctx, manifestPath, "manifest path must be set")

	metadata, err := a.Metadata.Resolve(ctx, manifestPath)
	if err != nil {
		return types.DependencyAnalysis{}, err
	}

	root, err := rootPackage(metadata)
	if err != nil {
		return types.DependencyAnalysis{}, err
	}

	directDeps := make([]types.DependencyInfo, 0, len(root.Dependencies))
	for _, dep := range root.Dependencies {
		directDeps = append(directDeps, types.DependencyInfo{
			Name:     dep.Name,
			Version:  dep.Req,
			IsDirect: true,
			Features: dep.Features,
			// Transitive names are not populated at this stage.
			Dependencies: []string{},
		})
	}

	results := make(chan scanResult, len(metadata.Packages))
	var wg sync.WaitGroup
	for _, pkg := range metadata.Packages {
		wg.Add(1)
		go func(pkg types.Package) {
			defer wg.Done()
			issues, scanErr := a.Scanner.ScanPackage(ctx, pkg)
			if scanErr != nil {
				// Policy: a failed package scan contributes no findings
				// instead of aborting the whole analysis.
				log.Ctx(ctx).Warn().Str("package", pkg.Name).Err(scanErr).Msg("package scan failed")
				return
			}
			results <- scanResult{name: pkg.Name, issues: issues}
		}(pkg)
	}
	wg.Wait()
	close(results)

	securityIssues := make(map[string][]types.SecurityIssue)
	for result := range results {
		if len(result.issues) == 0 {
			continue
		}
		securityIssues[result.name] = result.issues
	}

	return types.DependencyAnalysis{
		TotalDependencies:  len(metadata.Packages) - 1,
		DirectDependencies: directDeps,
		DependencyTree:     BuildDependencyGraph(metadata.Packages),
		SecurityIssues:     securityIssues,
	}, nil
}

func rootPackage(metadata types.Metadata) (types.Package, error) {
	if metadata.RootID != "" {
		for _, pkg := range metadata.Packages {
			if pkg.ID == metadata.RootID {
				return pkg, nil
			}
		}
	}
	return types.Package{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("no root package found")
}
