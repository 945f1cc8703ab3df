package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oastables/oaserrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSVFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestMerge(t *testing.T) {
	dir := t.TempDir()
	writeCSVFixture(t, dir, "b.csv", "name,in\nid,path\n")
	writeCSVFixture(t, dir, "a.CSV", "\xef\xbb\xbfname,in\nlimit,query\nstatus,query\n")
	writeCSVFixture(t, dir, "empty.csv", "")
	writeCSVFixture(t, dir, "notes.txt", "ignored")
	writeCSVFixture(t, dir, DefaultMergeName, "stale,output\n1,2\n")

	output := filepath.Join(dir, DefaultMergeName)
	res, err := Merge(dir, output)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.CSV", "b.csv"}, res.Sources)
	assert.Equal(t, []string{"empty.csv"}, res.Skipped)
	assert.Equal(t, []string{SourceFileColumn, "name", "in"}, res.Header)
	assert.Equal(t, 3, res.Rows)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "SourceFile,name,in\n"+
		"a.CSV,limit,query\n"+
		"a.CSV,status,query\n"+
		"b.csv,id,path\n", string(data))
}

func TestMerge_UsesFirstHeader(t *testing.T) {
	dir := t.TempDir()
	writeCSVFixture(t, dir, "1.csv", "x,y\n1,2\n")
	writeCSVFixture(t, dir, "2.csv", "other,cols,here\n3,4,5\n")

	output := filepath.Join(t.TempDir(), "out", "merged.csv")
	res, err := Merge(dir, output)
	require.NoError(t, err)
	assert.Equal(t, []string{SourceFileColumn, "x", "y"}, res.Header)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "SourceFile,x,y\n1.csv,1,2\n2.csv,3,4,5\n", string(data))
}

func TestMerge_Errors(t *testing.T) {
	_, err := Merge(filepath.Join(t.TempDir(), "missing"), "out.csv")
	assert.ErrorIs(t, err, oaserrors.ErrNotFound)

	empty := t.TempDir()
	_, err = Merge(empty, filepath.Join(empty, DefaultMergeName))
	assert.ErrorIs(t, err, oaserrors.ErrNotFound)

	bad := t.TempDir()
	writeCSVFixture(t, bad, "bad.csv", "a,\"unterminated\n")
	_, err = Merge(bad, filepath.Join(t.TempDir(), DefaultMergeName))
	assert.ErrorIs(t, err, oaserrors.ErrMalformedInput)
}
