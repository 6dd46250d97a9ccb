package driven

import "github.com/custodia-labs/bilingual-preview/internal/core/domain"

// SettingsStore provides presentation settings from persistent configuration.
// Implementations handle the file format (e.g., TOML).
type SettingsStore interface {
	// Settings returns the stored settings applied over
	// domain.DefaultPreviewSettings. Keys absent from storage keep
	// their default values.
	Settings() (domain.PreviewSettings, error)

	// Path returns the location of the backing file.
	Path() string
}
