package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	apperrors "github.com/louisbranch/gamedata/internal/platform/errors"
	"github.com/louisbranch/gamedata/internal/platform/jsondata"
)

// supportedExt reports whether a file name has a data file extension.
func supportedExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// ReadSource reads a JSON or YAML data file. YAML is converted to JSON first,
// so its errors carry member paths but no line numbers.
func ReadSource(path string) (*jsondata.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseSource(path, data)
}

// ParseSource wraps data read from name, picking the format by extension.
func ParseSource(name string, data []byte) (*jsondata.Source, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, apperrors.WrapWithMetadata(
				apperrors.CodeMalformedData,
				fmt.Sprintf("%s: invalid YAML", name),
				map[string]string{apperrors.MetaLocation: name},
				err,
			)
		}
		return jsondata.NewDerivedSource(name, converted)
	default:
		return jsondata.NewSource(name, data)
	}
}
