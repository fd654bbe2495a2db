// Package debug provides environment controlled tracing.
//
// Each flag is read once at startup from a TL_DEBUG_* environment
// variable holding a boolean, for example TL_DEBUG_READ=1.
package debug
