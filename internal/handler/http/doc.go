// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, and
// access logging are handled in this package before requests are delegated
// to the service layer.
//
// Every response uses one of two JSON envelopes: {"data": ...} on success
// and {"errors": ...} on failure.
package http
