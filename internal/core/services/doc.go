// Package services implements the core launcher logic: relevance
// scoring, ranked search with adaptive filtering, windowed cursor
// navigation and multi-snippet accumulation, plus the session that
// orchestrates them for one overlay invocation.
//
// Everything here is single-threaded and synchronous. Operations
// either fully succeed and mutate state, or fully fail and leave
// state untouched.
package services
