// Package types holds the small value types shared across the scheduler
// packages: the Request envelope a caller submits (call identifier, tool
// name, arguments) and the cooperative cancellation signal used throughout
// the Validating →
// Executing → terminal lifecycle.
package types
