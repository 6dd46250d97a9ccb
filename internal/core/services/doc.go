// Package services implements the driving port interfaces.
// Services contain the core generation flow and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go and depend only on domain and ports.
package services
