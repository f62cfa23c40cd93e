// Package middleware provides gin middleware shared across routes,
// currently the authenticated-session guard.
package middleware
