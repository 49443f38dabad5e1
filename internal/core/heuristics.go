package core

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog/log"

	"cratescope/internal/types"
)

// dependencyCountThreshold is the number of direct dependencies above
// which a package is flagged for attack surface.
const dependencyCountThreshold = 20

// checkVersion flags packages that have not reached 1.0. A version the
// resolver emitted that fails to parse as semver is left unflagged.
func checkVersion(pkg types.Package, issues []types.SecurityIssue) []types.SecurityIssue {
	version, err := semver.NewVersion(pkg.Version)
	if err != nil {
		log.Warn().Str("package", pkg.Name).Str("version", pkg.Version).Msg("unparseable package version")
		return issues
	}
	if version.Major() != 0 {
		return issues
	}
	return append(issues, types.SecurityIssue{
		Severity: types.SeverityLow,
		Description: fmt.Sprintf(
			"Package %s is pre-1.0 (%s) - API may be unstable", pkg.Name, pkg.Version),
		AffectedVersions: []string{pkg.Version},
	})
}

// checkDependencies flags excessive dependency counts and wildcard
// version requirements. Wildcard findings attribute affected_versions to
// the scanned package's own version, not the wildcarded dependency's.
func checkDependencies(pkg types.Package, issues []types.SecurityIssue) []types.SecurityIssue {
	if len(pkg.Dependencies) > dependencyCountThreshold {
		issues = append(issues, types.SecurityIssue{
			Severity: types.SeverityLow,
			Description: fmt.Sprintf(
				"Large number of dependencies (%d) increases attack surface", len(pkg.Dependencies)),
			AffectedVersions: []string{pkg.Version},
		})
	}
	for _, dep := range pkg.Dependencies {
		if !strings.Contains(dep.Req, "*") {
			continue
		}
		issues = append(issues, types.SecurityIssue{
			Severity: types.SeverityHigh,
			Description: fmt.Sprintf(
				"Wildcard dependency version for %s - security risk", dep.Name),
			AffectedVersions: []string{pkg.Version},
		})
	}
	return issues
}

// checkBuildScripts flags packages carrying a custom build step.
func checkBuildScripts(pkg types.Package, issues []types.SecurityIssue) []types.SecurityIssue {
	for _, target := range pkg.Targets {
		for _, kind := range target.Kind {
			if kind != types.TargetKindCustomBuild {
				continue
			}
			return append(issues, types.SecurityIssue{
				Severity: types.SeverityMedium,
				Description: fmt.Sprintf(
					"Package %s contains build scripts - review for security", pkg.Name),
				AffectedVersions: []string{pkg.Version},
			})
		}
	}
	return issues
}
