package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cratescope/internal/types"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanTreeEmitsOneIssuePerRuleAndFile(t *testing.T) {
	root := t.TempDir()
	path := writeSource(t, root, "lib.rs", `
unsafe { do_thing() }
unsafe { do_other_thing() }
std::process::Command::new("sh");
`)

	scanner := NewSourceScanner(DefaultRules())
	issues, err := scanner.ScanTree(root)
	require.NoError(t, err)
	require.Len(t, issues, 2, "two rules match, one issue each regardless of repeat hits")

	assert.Equal(t, types.SeverityHigh, issues[0].Severity)
	assert.Equal(t, "Contains unsafe blocks - review for memory safety in "+path, issues[0].Description)
	assert.Equal(t, "Process execution capabilities - review for command injection in "+path, issues[1].Description)
	for _, issue := range issues {
		assert.Equal(t, []string{}, issue.AffectedVersions)
		assert.Nil(t, issue.FixVersion)
	}
}

func TestScanTreeFindingsSerializeEmptyVersionList(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "lib.rs", "unsafe { }")

	scanner := NewSourceScanner(DefaultRules())
	issues, err := scanner.ScanTree(root)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	data, err := json.Marshal(issues[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"affected_versions":[]`)
	assert.Contains(t, string(data), `"fix_version":null`)
}

func TestScanTreeRecursesAndSkipsForeignExtensions(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, filepath.Join("nested", "deep", "net.rs"), `TcpListener::bind("1.2.3.4:9")`)
	writeSource(t, root, "build.sh", "eval (dangerous)")
	writeSource(t, root, "notes.txt", "unsafe {")

	scanner := NewSourceScanner(DefaultRules())
	issues, err := scanner.ScanTree(root)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Description, "Network listener")
}

func TestScanTreeUnreadableFileSkipped(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "good.rs", "unsafe { }")
	// A dangling symlink with a source extension fails to read; the scan
	// must carry on with the remaining files.
	require.NoError(t, os.Symlink(filepath.Join(root, "gone.rs"), filepath.Join(root, "broken.rs")))

	scanner := NewSourceScanner(DefaultRules())
	issues, err := scanner.ScanTree(root)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Description, "good.rs")
}

func TestScanTreeMissingRoot(t *testing.T) {
	scanner := NewSourceScanner(DefaultRules())
	issues, err := scanner.ScanTree(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestScanTreeIdempotent(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "a.rs", "unsafe { }")
	writeSource(t, root, "b.rs", `extern "C" {}`)

	scanner := NewSourceScanner(DefaultRules())
	first, err := scanner.ScanTree(root)
	require.NoError(t, err)
	second, err := scanner.ScanTree(root)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("scan is not idempotent (-first +second):\n%s", diff)
	}
}
