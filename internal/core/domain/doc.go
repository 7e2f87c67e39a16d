// Package domain defines the core business entities for Scribe.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PageLayout: A page's styled text as delivered by the layout provider
//   - Span: One styled text run in reading order
//   - Line: One reconstructed visual line
//   - Header: A detected company-name boundary
//   - Block: The text owned by one company
//   - Record: A fully extracted company directory entry
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
