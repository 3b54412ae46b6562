// Package jsonio is the JSON interchange boundary spec §6 names: stable
// toJSON() serialization of the Expression IR and of a flattened class,
// plus JSONC-tolerant reading of an optional host-tooling config sidecar.
// Nothing here participates in instantiation or flattening itself; it only
// converts their already-computed results to and from JSON.
package jsonio
