package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir reads the extract documents from a local directory, the layout the
// game's exporter writes to disk.
type Dir struct {
	path string
}

// NewDir returns a Source reading from the given directory.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// LocalizationTable reads strings.json. The exporter omits the file when the
// localization bundle is unavailable, so a missing table is an empty table,
// not an error; display names then fall back to title-cased base keys.
func (d *Dir) LocalizationTable(ctx context.Context) (map[string]string, error) {
	var table map[string]string
	if err := d.readDoc(StringsDoc, &table); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	if table == nil {
		table = map[string]string{}
	}
	return table, nil
}

// ShapeTable reads plugs.json.
func (d *Dir) ShapeTable(ctx context.Context) (map[string]PlugShape, error) {
	var plugs map[string]PlugShape
	if err := d.readDoc(PlugsDoc, &plugs); err != nil {
		return nil, err
	}
	return plugs, nil
}

// RawComponents reads components.json.
func (d *Dir) RawComponents(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := d.readDoc(ComponentsDoc, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (d *Dir) readDoc(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(d.path, name))
	if err != nil {
		return fmt.Errorf("failed to read extract document %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse extract document %s: %w", name, err)
	}
	return nil
}
