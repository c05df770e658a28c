// Command solid prints the Bad/Good snippet pairs for the SOLID principles.
//
// Usage
//
//	solid [-config solid.yaml] [-principle srp,dip] [-variant good|bad|both] [-headers=false] [-list]
//
// Snippet output goes to stdout; structured logs go to stderr (and to a
// rotated file when log_file / SOLID_LOG_FILE is set).
//
// Configuration file (YAML):
//
//	principles: [srp, ocp, lsp, isp, dip]
//	variant: both
//	headers: true
//	log_level: info
//	log_file: .logs/solid.log
//	development: false
//
// Environment overrides: SOLID_PRINCIPLES, SOLID_VARIANT, SOLID_LOG_LEVEL,
// SOLID_LOG_FILE, SOLID_ENV=development. Flags override both.
//
// Exit codes: 0 on success, 1 when a snippet fails, 2 on usage or config errors.
package main
