// Package config resolves the settings records consumed by the demo
// applications.
//
// Two independent variants exist:
//
//   - the environment variant ([GetConfig]) builds a [Config] from process
//     environment variables, substituting fixed defaults for absent
//     variables — resolution never fails;
//   - the file variant ([LoadFile]) reads a JSON document into a [Settings]
//     map, degrading to a default record when the file is missing and to an
//     empty record when the content is malformed — configuration errors
//     never abort the caller.
//
// Server runtime configuration ([GetServerConfig]) is assembled from
// command-line flags, environment variables, and fixed defaults, in that
// priority order (earlier sources win for non-zero fields).
package config
