package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/oastables/extract"
	"github.com/erraggy/oastables/internal/testutil"
	"github.com/erraggy/oastables/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleExport(t *testing.T) {
	spec := testutil.WriteSpec(t, "petstore.json", testutil.PetstoreV2JSON)
	dir := t.TempDir()

	out := captureStdout(t, func() {
		require.NoError(t, HandleExport([]string{"-q", "-o", dir, spec}))
	})

	paths := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, paths, len(extract.Sections())+1)
	assert.Equal(t, filepath.Join(dir, "endpoints.csv"), paths[0])
	assert.Equal(t, filepath.Join(dir, "petstore_tables.xlsx"), paths[len(paths)-1])
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}

func TestHandleExport_DefaultOutputDir(t *testing.T) {
	spec := testutil.WriteSpec(t, "petstore.json", testutil.PetstoreV2JSON)
	t.Chdir(t.TempDir())

	captureStdout(t, func() {
		require.NoError(t, HandleExport([]string{"--quiet", "--workbook", "book.xlsx", spec}))
	})
	assert.FileExists(t, filepath.Join("petstore_tables", "security.csv"))
	assert.FileExists(t, filepath.Join("petstore_tables", "book.xlsx"))
}

func TestHandleExport_FailureLeavesNoOutput(t *testing.T) {
	malformed := testutil.WriteSpec(t, "petstore.json", `{"paths": `)

	tests := []struct {
		name   string
		handle func([]string) error
		spec   string
		want   error
	}{
		{"export missing file", HandleExport, filepath.Join(t.TempDir(), "petstore.json"), oaserrors.ErrNotFound},
		{"export malformed", HandleExport, malformed, oaserrors.ErrMalformedInput},
		{"list missing file", HandleList, filepath.Join(t.TempDir(), "petstore.json"), oaserrors.ErrNotFound},
		{"list malformed", HandleList, malformed, oaserrors.ErrMalformedInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cwd := t.TempDir()
			t.Chdir(cwd)

			err := tt.handle([]string{"--quiet", tt.spec})
			require.ErrorIs(t, err, tt.want)

			assert.NoDirExists(t, filepath.Join(cwd, "petstore_tables"))
			entries, err := os.ReadDir(cwd)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestHandleExport_JSONReport(t *testing.T) {
	spec := testutil.WriteSpec(t, "petstore.json", testutil.PetstoreV3JSON)
	dir := t.TempDir()

	out := captureStdout(t, func() {
		require.NoError(t, HandleExport([]string{"--format", "json", "--output-dir", dir, spec}))
	})

	var report exportReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "3.0.3", report.Version)
	assert.Len(t, report.Files, len(extract.Sections())+1)
	assert.Equal(t, extract.SectionEndpoints, report.Sections[0].Name)
	assert.Equal(t, 3, report.Sections[0].Rows)
}

func TestHandleExport_Errors(t *testing.T) {
	t.Run("missing file argument", func(t *testing.T) {
		err := HandleExport([]string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one file path")
	})

	t.Run("invalid format", func(t *testing.T) {
		err := HandleExport([]string{"--format", "xml", "petstore.json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("non-existent file", func(t *testing.T) {
		err := HandleExport([]string{"-o", t.TempDir(), "/nonexistent/petstore.json"})
		assert.ErrorIs(t, err, oaserrors.ErrNotFound)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		spec := testutil.WriteSpec(t, "bad.json", `{"paths": `)
		err := HandleExport([]string{"-o", t.TempDir(), spec})
		assert.ErrorIs(t, err, oaserrors.ErrMalformedInput)
	})

	t.Run("not an OpenAPI document", func(t *testing.T) {
		spec := testutil.WriteSpec(t, "package.json", `{"name": "left-pad", "version": "1.0.0"}`)
		err := HandleExport([]string{"-o", t.TempDir(), spec})
		assert.ErrorIs(t, err, oaserrors.ErrMalformedInput)
	})

	t.Run("unwritable output", func(t *testing.T) {
		spec := testutil.WriteSpec(t, "petstore.json", testutil.PetstoreV2JSON)
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))
		err := HandleExport([]string{"-o", blocker, spec})
		assert.ErrorIs(t, err, oaserrors.ErrWrite)
	})

	t.Run("help", func(t *testing.T) {
		assert.NoError(t, HandleExport([]string{"--help"}))
	})
}

func TestHandleList(t *testing.T) {
	spec := testutil.WriteSpec(t, "petstore.json", testutil.PetstoreV2JSON)
	dir := t.TempDir()

	out := captureStdout(t, func() {
		require.NoError(t, HandleList([]string{"-q", "-o", dir, spec}))
	})
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "petstore.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "path,method,operation_id,summary"))
}

func TestHandleList_CustomNameAndBOM(t *testing.T) {
	spec := testutil.WriteSpec(t, "petstore.json", testutil.PetstoreV3JSON)
	dir := t.TempDir()

	captureStdout(t, func() {
		require.NoError(t, HandleList([]string{"-q", "--excel-bom", "--output", "ops.csv", "-o", dir, spec}))
	})

	data, err := os.ReadFile(filepath.Join(dir, "ops.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\xef\xbb\xbfpath,"))
}

func TestHandleList_Lenient(t *testing.T) {
	spec := testutil.WriteSpec(t, "wrapped.json", "HTTP/1.1 200 OK\n\n"+testutil.PetstoreV2JSON+"\n")
	dir := t.TempDir()

	err := HandleList([]string{"-q", "-o", dir, spec})
	assert.ErrorIs(t, err, oaserrors.ErrMalformedInput)

	captureStdout(t, func() {
		require.NoError(t, HandleList([]string{"-q", "--lenient", "-o", dir, spec}))
	})
	assert.FileExists(t, filepath.Join(dir, "wrapped.csv"))
}
