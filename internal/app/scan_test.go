package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cratescope/internal/adapters"
	"cratescope/internal/types"
)

type fakeMetadata struct {
	metadata types.Metadata
}

func (f fakeMetadata) Resolve(_ context.Context, _ string) (types.Metadata, error) {
	return f.metadata, nil
}

func testService(t *testing.T, packages []types.Package, rootID string) Service {
	t.Helper()
	return Service{
		Metadata:   fakeMetadata{metadata: types.Metadata{Packages: packages, RootID: rootID}},
		RuleLoader: adapters.NewRulesFileAdapter(),
	}
}

func demoPackage(t *testing.T, source string) types.Package {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "lib.rs"), []byte(source), 0644))
	return types.Package{
		ID:           "demo-id",
		Name:         "demo",
		Version:      "1.0.0",
		ManifestPath: filepath.Join(dir, "Cargo.toml"),
	}
}

func TestScanRequiresManifestPath(t *testing.T) {
	service := testService(t, nil, "")
	_, err := service.Scan(t.Context(), ScanRequest{ManifestPath: "  "})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestScanWithDefaultRules(t *testing.T) {
	pkg := demoPackage(t, "unsafe { }")
	service := testService(t, []types.Package{pkg}, "demo-id")

	result, err := service.Scan(t.Context(), ScanRequest{ManifestPath: "Cargo.toml"})
	require.NoError(t, err)
	require.Len(t, result.Analysis.SecurityIssues["demo"], 1)
	assert.Contains(t, result.Analysis.SecurityIssues["demo"][0].Description, "unsafe blocks")
}

func TestScanAppendsRulesFromFile(t *testing.T) {
	pkg := demoPackage(t, "let h = md5::compute(data);")
	service := testService(t, []types.Package{pkg}, "demo-id")

	rulesPath := filepath.Join(t.TempDir(), "rules.yaml")
	rulesYAML := `rules:
  - pattern: 'md5::'
    description: "Weak hash algorithm"
    severity: medium
`
	require.NoError(t, os.WriteFile(rulesPath, []byte(rulesYAML), 0644))

	result, err := service.Scan(t.Context(), ScanRequest{
		ManifestPath: "Cargo.toml",
		RulesFile:    rulesPath,
	})
	require.NoError(t, err)
	issues := result.Analysis.SecurityIssues["demo"]
	require.Len(t, issues, 1)
	assert.Equal(t, types.SeverityMedium, issues[0].Severity)
	assert.Contains(t, issues[0].Description, "Weak hash algorithm")
}

func TestScanDeepFlagIsInert(t *testing.T) {
	pkg := demoPackage(t, "unsafe { }")
	service := testService(t, []types.Package{pkg}, "demo-id")

	shallow, err := service.Scan(t.Context(), ScanRequest{ManifestPath: "Cargo.toml"})
	require.NoError(t, err)
	deep, err := service.Scan(t.Context(), ScanRequest{ManifestPath: "Cargo.toml", Deep: true})
	require.NoError(t, err)
	assert.Equal(t, shallow.Analysis, deep.Analysis)
}

func TestScanBadRulesFileFailsRun(t *testing.T) {
	pkg := demoPackage(t, "fn main() {}")
	service := testService(t, []types.Package{pkg}, "demo-id")

	_, err := service.Scan(t.Context(), ScanRequest{
		ManifestPath: "Cargo.toml",
		RulesFile:    filepath.Join(t.TempDir(), "absent.yaml"),
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
