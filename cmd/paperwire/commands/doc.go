// Package commands implements the paperwire CLI verbs: encode, decode,
// inspect and fingerprint. Transcript parameters are resolved from
// defaults, an optional YAML profile and explicit flags, in that order.
package commands
