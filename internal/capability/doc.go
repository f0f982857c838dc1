// Package capability defines the backend's capability surface: the group,
// role, and filter enumerations, the packed Bitfield set representation, and
// the registry the host queries at load time to route requests.
//
// The registry is pure data. All functions are callable at any time after
// load, before or after runtime initialization.
package capability
