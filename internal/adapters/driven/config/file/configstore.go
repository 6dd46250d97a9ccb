package file

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bilingual-preview/internal/core/domain"
	"github.com/custodia-labs/bilingual-preview/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.SettingsStore = (*ConfigStore)(nil)

// configFile is the on-disk layout. Settings live under a [preview] table:
//
//	[preview]
//	search_label = "ID search"
//	search_size = 6
//	search_max_length = 5
//	sanitize = false
//	lang = "hu"
type configFile struct {
	Preview domain.PreviewSettings `toml:"preview"`
}

// ConfigStore reads preview settings from a TOML file.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a store backed by the TOML file at filePath.
// The file is read on every call to Settings.
func NewConfigStore(filePath string) *ConfigStore {
	return &ConfigStore{filePath: filePath}
}

// Settings reads the file and applies it over the default settings.
// Unknown keys are rejected so typos do not pass silently.
func (s *ConfigStore) Settings() (domain.PreviewSettings, error) {
	cfg := configFile{Preview: domain.DefaultPreviewSettings()}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.PreviewSettings{}, fmt.Errorf("%w: settings file %s does not exist", domain.ErrInvalidInput, s.filePath)
		}
		return domain.PreviewSettings{}, fmt.Errorf("read settings %s: %w", s.filePath, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return domain.PreviewSettings{}, fmt.Errorf("%w: settings file %s: %v", domain.ErrInvalidInput, s.filePath, err)
	}

	if err := cfg.Preview.Validate(); err != nil {
		return domain.PreviewSettings{}, fmt.Errorf("settings file %s: %w", s.filePath, err)
	}
	return cfg.Preview, nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
