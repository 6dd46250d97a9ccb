package domain

import "fmt"

// Default presentation settings.
const (
	DefaultSearchLabel     = "ID search"
	DefaultSearchSize      = 6
	DefaultSearchMaxLength = 5
)

// PreviewSettings controls presentation details of the generated page.
type PreviewSettings struct {
	// SearchLabel is the text of the search box label.
	SearchLabel string `toml:"search_label"`

	// SearchSize is the visible width of the search input, in characters.
	SearchSize int `toml:"search_size"`

	// SearchMaxLength limits how many characters the search input accepts.
	SearchMaxLength int `toml:"search_max_length"`

	// Sanitize runs segment markup through an HTML sanitiser before it is
	// embedded. Off by default so the page shows the export as-is.
	Sanitize bool `toml:"sanitize"`

	// Lang is emitted as the lang attribute of the page when set.
	Lang string `toml:"lang"`
}

// DefaultPreviewSettings returns the settings used when no file is given.
func DefaultPreviewSettings() PreviewSettings {
	return PreviewSettings{
		SearchLabel:     DefaultSearchLabel,
		SearchSize:      DefaultSearchSize,
		SearchMaxLength: DefaultSearchMaxLength,
	}
}

// Validate checks that the settings can produce a usable page.
func (s PreviewSettings) Validate() error {
	if s.SearchSize <= 0 {
		return fmt.Errorf("%w: search_size must be positive, got %d", ErrInvalidInput, s.SearchSize)
	}
	if s.SearchMaxLength <= 0 {
		return fmt.Errorf("%w: search_max_length must be positive, got %d", ErrInvalidInput, s.SearchMaxLength)
	}
	return nil
}
