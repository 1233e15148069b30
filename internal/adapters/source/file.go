package source

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pace/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileSource reads task records from a local YAML or JSON file. The format
// is chosen by extension; anything that is not .json is parsed as YAML.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: filepath.Clean(path)}
}

// Fetch reads and decodes the record sequence. A file holding an empty
// sequence is a successful fetch.
func (s *FileSource) Fetch(_ context.Context) ([]domain.TaskRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceReadFailed.Error())
	}

	var records []domain.TaskRecord
	if strings.EqualFold(filepath.Ext(s.path), ".json") {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, zerr.Wrap(err, domain.ErrSourceParseFailed.Error())
		}
		return records, nil
	}

	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceParseFailed.Error())
	}
	return records, nil
}
