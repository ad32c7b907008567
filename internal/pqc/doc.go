// Package pqc classifies the cryptography observed on a TLS connection.
//
// The classifier works on free-form algorithm names as reported by probes and
// third-party lookup services (for example "X25519MLKEM768",
// "sha256WithRSAEncryption" or "TLS_AES_256_GCM_SHA384"):
//
//   - Classify maps one raw name for a Role to a Classification by substring
//     matching against a static pattern table, checking quantum patterns
//     first, then hybrid, then classical.
//   - ClassifyConnection applies Classify to the key exchange, signature and
//     symmetric roles independently.
//   - DeriveReadiness folds the per-role results into a Green/Yellow/Red
//     Readiness verdict.
//
// Missing input is never an error. An empty name produces no Classification
// at all, which callers must keep distinct from a name that matched nothing
// (family Unknown). All functions are pure and safe for concurrent use.
package pqc
