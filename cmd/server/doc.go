// Package main is the entry point for the demo API server.
//
// All configuration comes from the environment:
//
//	PORT=3000 APP_VERSION=1.2.0 NODE_ENV=production ./server
//
// With NODE_ENV=test the router is built but no listener is opened, and the
// process exits right away.
//
// Commands:
//
//	server           run the API
//	server version   print name, version and environment
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown bounded by SHUTDOWN_TIMEOUT
package main
