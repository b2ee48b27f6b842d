package blobs

import (
	"embed"
	"encoding/hex"
	"io/fs"
	"strings"
)

//go:embed *.hex
var contents embed.FS

// List returns the fixture names, without the .hex extension
func List() []string {
	result := make([]string, 0)
	_ = fs.WalkDir(contents, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			result = append(result, strings.TrimSuffix(path, ".hex"))
		}
		return nil
	})
	return result
}

// Open returns the decoded bytes of a fixture
func Open(name string) ([]byte, error) {
	raw, err := contents.ReadFile(name + ".hex")
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(strings.Join(strings.Fields(string(raw)), ""))
}
