package stylefile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	slyr "github.com/north-road/slyr-sub002"
	"github.com/north-road/slyr-sub002/_test_data/blobs"
)

const testSchema = `
CREATE TABLE "Line symbols" (ID INTEGER PRIMARY KEY, NAME TEXT, CATEGORY TEXT, OBJECT BLOB, TAGS TEXT);
CREATE TABLE "Fill symbols" (ID INTEGER PRIMARY KEY, NAME TEXT, CATEGORY TEXT, OBJECT BLOB);
CREATE TABLE Meta (KEY TEXT, VALUE TEXT);
INSERT INTO Meta (KEY, VALUE) VALUES ('version', '10');
`

// createStyle writes a small style database and returns its path
func createStyle(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.style.sqlite")
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite|sqlite.OpenCreate)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, sqlitex.ExecuteScript(conn, testSchema, nil))

	dashDotDot, err := blobs.Open("dash_dot_dot")
	require.NoError(t, err)
	simpleFill, err := blobs.Open("simple_fill")
	require.NoError(t, err)

	insert := func(query string, args ...any) {
		require.NoError(t, sqlitex.Execute(conn, query, &sqlitex.ExecOptions{Args: args}))
	}
	insert(`INSERT INTO "Line symbols" (ID, NAME, CATEGORY, OBJECT, TAGS) VALUES (?, ?, ?, ?, NULL)`,
		7, "Broken", "Default", []byte{1, 2, 3})
	insert(`INSERT INTO "Line symbols" (ID, NAME, CATEGORY, OBJECT, TAGS) VALUES (?, ?, ?, ?, ?)`,
		3, "Dash Dot Dot", "Dashed", dashDotDot, "dash;dot")
	insert(`INSERT INTO "Fill symbols" (ID, NAME, CATEGORY, OBJECT) VALUES (?, ?, NULL, ?)`,
		1, "Outlined", simpleFill)
	return path
}

func TestFile_Categories(t *testing.T) {
	style, err := Open(createStyle(t))
	require.NoError(t, err)
	defer style.Close()

	categories, err := style.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{FillSymbols, LineSymbols, "Meta"}, categories)
}

func TestFile_Records(t *testing.T) {
	style, err := Open(createStyle(t))
	require.NoError(t, err)
	defer style.Close()

	records, err := style.Records(context.Background(), LineSymbols)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(3), records[0].ID)
	assert.Equal(t, "Dash Dot Dot", records[0].Name)
	assert.Equal(t, "Dashed", records[0].Category)
	assert.Equal(t, "dash;dot", records[0].Tags)
	assert.Equal(t, int64(7), records[1].ID)
	assert.Equal(t, []byte{1, 2, 3}, records[1].Blob)
	assert.Empty(t, records[1].Tags)

	obj, err := records[0].Decode(nil)
	require.NoError(t, err)
	assert.IsType(t, &slyr.LineSymbol{}, obj)

	_, err = records[1].Decode(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `record 7 "Broken"`)
	assert.ErrorIs(t, err, slyr.ErrTruncated)
}

func TestFile_RecordsWithoutOptionalColumns(t *testing.T) {
	style, err := Open(createStyle(t))
	require.NoError(t, err)
	defer style.Close()

	records, err := style.Records(context.Background(), FillSymbols)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, FillSymbols, records[0].Category, "null category falls back to the table name")
	assert.Empty(t, records[0].Tags)

	obj, err := records[0].Decode(&slyr.DecodeOptions{RequireFullConsumption: true})
	require.NoError(t, err)
	assert.IsType(t, &slyr.FillSymbol{}, obj)
}

func TestFile_RecordsErrors(t *testing.T) {
	style, err := Open(createStyle(t))
	require.NoError(t, err)
	defer style.Close()

	_, err = style.Records(context.Background(), MarkerSymbols)
	assert.ErrorContains(t, err, `has no category "Marker symbols"`)

	_, err = style.Records(context.Background(), "Meta")
	assert.ErrorContains(t, err, "has no OBJECT column")
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.style"))
	assert.ErrorContains(t, err, "failed to open style")
}
