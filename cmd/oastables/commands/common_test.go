package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/erraggy/oastables/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn and returns everything it wrote to os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() {
		_ = w.Close()
		os.Stdout = old
	}()

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestOutputStructured(t *testing.T) {
	data := map[string]int{"rows": 3}

	out := captureStdout(t, func() {
		require.NoError(t, OutputStructured(data, FormatJSON))
	})
	assert.Equal(t, "{\n  \"rows\": 3\n}\n", out)

	out = captureStdout(t, func() {
		require.NoError(t, OutputStructured(data, FormatYAML))
	})
	assert.Equal(t, "rows: 3\n", out)

	assert.Error(t, OutputStructured(data, FormatText))
}

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d rows", "endpoints", 4)
	assert.Equal(t, "endpoints: 4 rows", buf.String())
}

func TestRenderSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf, []string{"method", "path"}, [][]string{{"get", "/pets"}, {"post", "/pets"}}, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "METHOD  PATH ", lines[0])
	assert.Equal(t, "get     /pets", lines[1])
}

func TestRenderSummaryTable_Quiet(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf, []string{"method", "path"}, [][]string{{"get", "/pets"}}, true)
	assert.Equal(t, "get\t/pets\n", buf.String())
}

func TestRenderSummaryTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderSummaryTable(&buf, []string{"a"}, nil, false)
	assert.Zero(t, buf.Len())
}

func TestRenderDetail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDetail(&buf, []map[string]string{{"name": "pet"}}, FormatYAML))
	assert.Equal(t, "- name: pet\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderDetail(&buf, []map[string]string{{"name": "pet"}}, FormatJSON))
	assert.Contains(t, buf.String(), `"name": "pet"`)

	assert.Error(t, RenderDetail(&buf, nil, "xml"))
}

func TestNewLogger(t *testing.T) {
	assert.IsType(t, loader.NopLogger{}, newLogger(false))
	assert.IsType(t, &loader.SlogAdapter{}, newLogger(true))
}
