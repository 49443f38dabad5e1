package types

// Dependency is one declared direct dependency of a package as reported
// by the resolver: a name plus the raw version requirement string and the
// feature names enabled on it.
type Dependency struct {
	Name     string   `json:"name"`
	Req      string   `json:"req"`
	Features []string `json:"features"`
}

// Target is a build target of a package. Kind carries the resolver's
// kind tags verbatim (lib, bin, custom-build, ...).
type Target struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}

// Package is an immutable snapshot of one resolved package. The core
// never mutates packages; they are produced once by the metadata port.
type Package struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Version      string       `json:"version"`
	ManifestPath string       `json:"manifest_path"`
	Dependencies []Dependency `json:"dependencies"`
	Targets      []Target     `json:"targets"`
}

// Metadata is the full resolved package set for one manifest. RootID
// identifies the root package within Packages; empty means the resolver
// could not identify one.
type Metadata struct {
	Packages []Package
	RootID   string
}

// DependencyInfo describes one direct dependency of the analyzed root.
// Dependencies (transitive names) is deliberately left empty at this
// stage of analysis.
type DependencyInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	IsDirect     bool     `json:"is_direct"`
	Features     []string `json:"features"`
	Dependencies []string `json:"dependencies"`
}

// SecurityIssue is a single finding. FixVersion is nil unless a
// remediation is known; source-scan findings never populate it.
type SecurityIssue struct {
	Severity         Severity `json:"severity"`
	Description      string   `json:"description"`
	AffectedVersions []string `json:"affected_versions"`
	FixVersion       *string  `json:"fix_version"`
}

// DependencyAnalysis is the complete report for one run. SecurityIssues
// never contains an entry with an empty finding list; DependencyTree has
// exactly one entry per resolved package.
type DependencyAnalysis struct {
	TotalDependencies  int                        `json:"total_dependencies"`
	DirectDependencies []DependencyInfo           `json:"direct_dependencies"`
	DependencyTree     map[string][]string        `json:"dependency_tree"`
	SecurityIssues     map[string][]SecurityIssue `json:"security_issues"`
}
