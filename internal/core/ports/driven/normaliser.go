package driven

// MarkupNormaliser removes redundant block-level wrappers from text fragments.
type MarkupNormaliser interface {
	// Normalise strips outer p/ul/ol/li wrappers until none is left.
	// Fragments without such a wrapper are returned unchanged.
	Normalise(fragment string) string
}
