// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// The preview service depends on these interfaces, and adapters implement them.
//
// # Required Interfaces
//
//   - DocumentLoader: Reads a bilingual export into memory
//   - MarkupNormaliser: Strips redundant block wrappers from a fragment
//   - PageBuilder: Assembles the comparison page
//   - PageRenderer: Writes a page to disk
//
// # Optional Interfaces
//
//   - SettingsStore: Reads presentation settings from a file
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
