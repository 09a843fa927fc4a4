// Package inject delivers finalized payloads to the outside world.
// The default path copies the payload to the system clipboard; a
// configured command receives it on stdin instead. Desktop
// notifications report the outcome when enabled.
package inject
