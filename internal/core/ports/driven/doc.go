// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - LayoutProvider: Opens documents and yields per-page styled layouts
//   - HeuristicsStore: Loads the header-detection heuristic tables
//
// # Optional Interfaces
//
//   - ManagementExtractor: Pulls management names/roles from a block.
//     The default implementation always returns nothing; a future
//     NLP-based extractor can be substituted without touching the
//     aggregation code.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or pipeline package
package driven
