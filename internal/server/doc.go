// Package server assembles the router and owns the HTTP listener.
//
// NewServer builds every dependency (logger, metrics, item store, tracer)
// once and injects them into the handlers, so each Server is an isolated
// instance. Tests drive Handler() through httptest instead of calling Run.
package server
