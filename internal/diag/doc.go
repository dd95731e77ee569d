// Package diag defines the rule catalog and the diagnostic model of bashate.
//
// # Purpose
//
//   - Hold the fixed rule catalog: every Code has a short message, an optional
//     long description and a default Severity (codes.go).
//   - Decide how a violation is reported given the user's ignore / warn / error
//     lists (policy.go).
//   - Carry findings from producers to the output without coupling the scanner
//     to formatting (Reporter, Bag, Sink).
//
// # Scope
//
// Package diag does no IO of its own. Rendering lives in internal/diagfmt; the
// scanner that produces findings lives in internal/driver.
//
// # Data model
//
// Finding is what a check or the scanner produces: a Code, the rendered
// message, the line number and the offending text. Diagnostic is a Finding
// after classification, with the file name and Severity attached.
//
// # Severity precedence
//
// For a rule id, Classify applies, highest first:
//
//  1. id in the ignore list: the finding is dropped;
//  2. id in the error list: error;
//  3. catalog default is warning: warning;
//  4. id in the warn list: warning;
//  5. otherwise error.
//
// Lists are parsed by ParseIDList and match whole identifiers only.
//
// # Consumers
//
//   - internal/driver: reports findings per file, either straight into the
//     Sink or into a Bag that is replayed later.
//   - internal/diagfmt: implements Emitter for each output format.
//   - cmd/bashate: reads Sink counters to pick the exit status.
package diag
