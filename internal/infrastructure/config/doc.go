// Package config loads service configuration from environment variables.
//
// Variables follow 12-factor conventions and every field has a default, so
// the service starts with an empty environment:
//
//	PORT=3000 APP_VERSION=1.0.0 NODE_ENV=development
//
// NODE_ENV=test builds the full router without opening a listener, which
// lets test harnesses drive the app through httptest.
package config
