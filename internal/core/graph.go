package core

import "cratescope/internal/types"

// BuildDependencyGraph maps every resolved package's name to the names
// of its direct dependencies, in declaration order. The graph is a plain
// adjacency list: one level deep, no transitive closure, no cycle
// detection. Packages without dependencies map to an empty list.
func BuildDependencyGraph(packages []types.Package) map[string][]string {
	tree := make(map[string][]string, len(packages))
	for _, pkg := range packages {
		deps := make([]string, 0, len(pkg.Dependencies))
		for _, dep := range pkg.Dependencies {
			deps = append(deps, dep.Name)
		}
		tree[pkg.Name] = deps
	}
	return tree
}
