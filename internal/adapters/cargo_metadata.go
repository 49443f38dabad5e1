package adapters

import (
	"context"
	"encoding/json"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cratescope/internal/ports"
	"cratescope/internal/types"
)

// CargoMetadataAdapter resolves a Cargo.toml by shelling out to
// `cargo metadata` and decoding its JSON output.
type CargoMetadataAdapter struct {
	run commandRunner
}

func NewCargoMetadataAdapter() CargoMetadataAdapter {
	return CargoMetadataAdapter{run: runCommand}
}

// cargoMetadataOutput mirrors the subset of the `cargo metadata
// --format-version 1` schema this tool consumes.
type cargoMetadataOutput struct {
	Packages []cargoPackage `json:"packages"`
	Resolve  *cargoResolve  `json:"resolve"`
}

type cargoPackage struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	ManifestPath string            `json:"manifest_path"`
	Dependencies []cargoDependency `json:"dependencies"`
	Targets      []cargoTarget     `json:"targets"`
}

type cargoDependency struct {
	Name     string   `json:"name"`
	Req      string   `json:"req"`
	Features []string `json:"features"`
}

type cargoTarget struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}

type cargoResolve struct {
	Root string `json:"root"`
}

func (a CargoMetadataAdapter) Resolve(ctx context.Context, manifestPath string) (types.Metadata, error) {
	if _, err := os.Stat(manifestPath); err != nil {
		return types.Metadata{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	output, err := a.run(ctx, "cargo",
		"metadata", "--format-version", "1", "--manifest-path", manifestPath)
	if err != nil {
		return types.Metadata{}, err
	}
	metadata, err := parseMetadata(output)
	if err != nil {
		return types.Metadata{}, err
	}
	log.Ctx(ctx).Debug().Int("packages", len(metadata.Packages)).Msg("manifest resolved")
	return metadata, nil
}

func parseMetadata(data []byte) (types.Metadata, error) {
	var decoded cargoMetadataOutput
	if err := json.Unmarshal(data, &decoded); err != nil {
		return types.Metadata{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse cargo metadata output").
			WithCause(err)
	}
	packages := make([]types.Package, 0, len(decoded.Packages))
	for _, pkg := range decoded.Packages {
		deps := make([]types.Dependency, 0, len(pkg.Dependencies))
		for _, dep := range pkg.Dependencies {
			deps = append(deps, types.Dependency{
				Name:     dep.Name,
				Req:      dep.Req,
				Features: dep.Features,
			})
		}
		targets := make([]types.Target, 0, len(pkg.Targets))
		for _, target := range pkg.Targets {
			targets = append(targets, types.Target{Name: target.Name, Kind: target.Kind})
		}
		packages = append(packages, types.Package{
			ID:           pkg.ID,
			Name:         pkg.Name,
			Version:      pkg.Version,
			ManifestPath: pkg.ManifestPath,
			Dependencies: deps,
			Targets:      targets,
		})
	}
	metadata := types.Metadata{Packages: packages}
	if decoded.Resolve != nil {
		metadata.RootID = decoded.Resolve.Root
	}
	return metadata, nil
}

var _ ports.MetadataPort = CargoMetadataAdapter{}
