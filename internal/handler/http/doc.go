// Package http implements the HTTP transport layer of the theatre service.
//
// It exposes route wiring, the session endpoints, and the middleware used by
// the JSON API. The session travels with every request either as a bearer
// token or as a signed cookie; it is decoded before the handler runs and the
// next session is written back with the response. Request tracing, access
// logging, response compression, and integrity checks are handled here
// before requests are delegated to the session controller.
package http
