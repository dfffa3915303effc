package testutil

import (
	"os"
	"path/filepath"
)

// TestingTB is the subset of testing.TB used by the helpers.
type TestingTB interface {
	Helper()
	Fatalf(format string, args ...any)
	TempDir() string
}

// WriteFile writes content to dir/name and returns the path.
func WriteFile(t TestingTB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// EditorFiles locates the three files the editor loads.
type EditorFiles struct {
	Dir         string
	JobsPath    string
	UIPath      string
	CatalogPath string
}

// WriteEditorFiles writes a job config, UI config and catalog into a fresh temp dir.
// An empty catalog is not written, so the file is missing.
func WriteEditorFiles(t TestingTB, jobs, ui, catalog string) EditorFiles {
	t.Helper()
	dir := t.TempDir()
	files := EditorFiles{
		Dir:         dir,
		JobsPath:    WriteFile(t, dir, "config.json", jobs),
		UIPath:      WriteFile(t, dir, "configui.json", ui),
		CatalogPath: filepath.Join(dir, "cryptos.json"),
	}
	if catalog != "" {
		WriteFile(t, dir, "cryptos.json", catalog)
	}
	return files
}
