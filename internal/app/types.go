package app

import "cratescope/internal/types"

// ScanRequest carries everything one scan invocation needs. Deep is
// accepted for forward compatibility and currently changes nothing.
type ScanRequest struct {
	ManifestPath string
	RulesFile    string
	Deep         bool
}

// ScanResult wraps the analysis for the CLI layer.
type ScanResult struct {
	Analysis types.DependencyAnalysis
}
