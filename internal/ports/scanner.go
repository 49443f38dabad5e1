package ports

import (
	"context"

	"cratescope/internal/types"
)

// ScannerPort produces the complete issue list for one package. A
// returned error means the package could not be scanned; the caller
// decides whether that aborts anything.
type ScannerPort interface {
	ScanPackage(ctx context.Context, pkg types.Package) ([]types.SecurityIssue, error)
}
