// Package api maps HTTP routes onto the service layer. Handlers translate
// form submissions into service calls and service errors into flash
// messages plus redirects; nothing below this package knows about HTTP.
package api
