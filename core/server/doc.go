// Package server holds the HTTP server configuration.
//
// cmd/start builds the Fiber app from this Config: the listen address, the
// request body limit that caps dataset uploads, and the API key checked by the
// auth middleware.
package server
