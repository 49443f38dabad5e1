package ports

import (
	"context"

	"cratescope/internal/types"
)

// MetadataPort resolves a manifest into the full package set. The
// production adapter shells out to the package manager's metadata
// command; tests substitute an in-memory implementation.
type MetadataPort interface {
	// Resolve returns every package (direct and transitive) that
	// satisfies the manifest's declarations, plus the ID of the root
	// package when one is identifiable.
	Resolve(ctx context.Context, manifestPath string) (types.Metadata, error)
}
