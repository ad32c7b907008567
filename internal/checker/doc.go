// Package checker turns a domain into a post-quantum readiness report.
//
// Architecture overview:
//
//   - Sources implement the Source interface (Observe + Name) and return the
//     raw algorithm strings seen for a host. ProbeSource dials the host over
//     TLS itself; LookupSource asks a certificate-transparency log and the
//     Mozilla TLS Observatory.
//   - Analyzer feeds an Observation to the pqc classifier and builds a Report.
//     A failing source never surfaces as an error: the Report degrades to
//     status ERROR with a red verdict and no classifications.
//   - Runner analyzes many targets with bounded concurrency and a global rate
//     limit, returning reports in input order.
//   - ParseTarget and ExtractHost normalize user input such as
//     "https://example.com:8443/path" into host and port.
package checker
