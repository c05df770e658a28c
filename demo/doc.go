// Package demo registers the Bad/Good snippet pairs and runs them.
//
// A Key names one snippet (principle + variant). A Registry maps keys to
// Funcs; Default returns the registry holding every snippet in this module.
// Runner executes a selection of keys in order, logging each run.
package demo
