// Package types provides shared data structures for the demo API.
//
// Core Types:
//   - Item: Record held by the in-memory item store
//   - ItemFields: Create request body
//
// Response Types:
//   - WelcomeResponse, HealthResponse, InfoResponse: Fixed endpoint payloads
//   - ErrorResponse: Body of every error reply
//
// Example Usage:
//
//	item, err := store.Create(types.ItemFields{Name: "Widget"})
package types
