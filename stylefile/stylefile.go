// Package stylefile reads symbol records from an SQLite export of an ESRI .style database
//
// each style category is a table with the columns ID, NAME, CATEGORY, OBJECT and
// (in newer styles) TAGS, where OBJECT holds the binary symbol blob
package stylefile

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	slyr "github.com/north-road/slyr-sub002"
)

// Style categories
const (
	Colors        = "Colors"
	FillSymbols   = "Fill symbols"
	LineSymbols   = "Line symbols"
	MarkerSymbols = "Marker symbols"
	ColorRamps    = "Color ramps"
	TextSymbols   = "Text Symbols"
	Labels        = "Labels"
	MaplexLabels  = "Maplex Labels"
	AreaPatches   = "Area Patches"
	LinePatches   = "Line Patches"
	ScaleBars     = "Scale Bars"
	LegendItems   = "Legend Items"
	ScaleTexts    = "Scale Texts"
	Borders       = "Borders"
	Backgrounds   = "Backgrounds"
	NorthArrows   = "North Arrows"
	Shadows       = "Shadows"
)

const (
	columnID       = "ID"
	columnName     = "NAME"
	columnCategory = "CATEGORY"
	columnObject   = "OBJECT"
	columnTags     = "TAGS"
)

// Record is one entry of a style category
type Record struct {
	ID       int64
	Name     string
	Category string
	Tags     string
	Blob     []byte
}

// Decode decodes the record's blob
func (r Record) Decode(options *slyr.DecodeOptions) (slyr.Object, error) {
	obj, err := slyr.Decode(r.Blob, options)
	if err != nil {
		return nil, fmt.Errorf("record %d %q: %w", r.ID, r.Name, err)
	}
	return obj, nil
}

// File is an open style database
type File struct {
	conn *sqlite.Conn
	path string
}

// Open opens a style database read-only
func Open(path string) (*File, error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to open style %s: %w", path, err)
	}
	return &File{conn: conn, path: path}, nil
}

func (f *File) Close() error {
	return f.conn.Close()
}

// Categories lists the tables which hold symbol records
func (f *File) Categories(ctx context.Context) ([]string, error) {
	f.conn.SetInterrupt(ctx.Done())
	defer f.conn.SetInterrupt(nil)
	var result []string
	err := sqlitex.Execute(f.conn,
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name",
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				result = append(result, stmt.ColumnText(0))
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories of %s: %w", f.path, err)
	}
	return result, nil
}

// Records returns every record of a category, in ID order
func (f *File) Records(ctx context.Context, category string) ([]Record, error) {
	categories, err := f.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(categories, category) {
		return nil, fmt.Errorf("style %s has no category %q", f.path, category)
	}
	f.conn.SetInterrupt(ctx.Done())
	defer f.conn.SetInterrupt(nil)

	var result []Record
	columns := map[string]int{}
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %s", quoteIdent(category), columnID)
	err = sqlitex.Execute(f.conn, query, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			if len(columns) == 0 {
				for i := 0; i < stmt.ColumnCount(); i++ {
					columns[strings.ToUpper(stmt.ColumnName(i))] = i
				}
				if _, ok := columns[columnObject]; !ok {
					return fmt.Errorf("category %q has no %s column", category, columnObject)
				}
			}
			result = append(result, scanRecord(stmt, columns, category))
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %q from %s: %w", category, f.path, err)
	}
	return result, nil
}

func scanRecord(stmt *sqlite.Stmt, columns map[string]int, category string) Record {
	record := Record{Category: category}
	if i, ok := columns[columnID]; ok {
		record.ID = stmt.ColumnInt64(i)
	}
	if i, ok := columns[columnName]; ok {
		record.Name = stmt.ColumnText(i)
	}
	if i, ok := columns[columnCategory]; ok && !stmt.ColumnIsNull(i) {
		record.Category = stmt.ColumnText(i)
	}
	if i, ok := columns[columnTags]; ok && !stmt.ColumnIsNull(i) {
		record.Tags = stmt.ColumnText(i)
	}
	i := columns[columnObject]
	record.Blob = make([]byte, stmt.ColumnLen(i))
	stmt.ColumnBytes(i, record.Blob)
	return record
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
