// Package preflight checks filesystem preconditions before sitecfg writes
// anything, so failures surface as readable messages instead of partial
// writes.
package preflight
