// Package http implements the HTTP transport layer of the application.
// It provides middleware, page handlers, and the embedded HTML templates
// for the users admin pages. Session checking, logging, tracing, and
// request-method gating are all handled at this layer before requests are
// forwarded to the service layer.
package http
