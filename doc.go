// Package solid presents the five SOLID principles as paired Bad/Good Go
// snippets.
//
// Each principle lives in its own package under principles/:
//
//   - srp: a user adapter that stops formatting what it binds
//   - ocp: a mileage calculator that no longer switches on vehicle types
//   - lsp: click listeners that can be swapped without type checks
//   - isp: an overloaded click listener split into item and radio listeners
//   - dip: a syncer that receives its data fetcher instead of building it
//
// Supporting packages:
//   - di: the explicit dependency injection helper used by the dip snippet
//   - demo: the registry of snippets and the runner that prints them
//   - cmd/solid: the command-line entry point
package solid
