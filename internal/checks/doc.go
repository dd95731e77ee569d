// Package checks holds the stateless line rules and the small predicates the
// scanner uses to fold physical lines into logical ones.
//
// Every check takes one comment-stripped line without its terminator and
// reports at most one Violation. None of them keep state between calls, so
// they are safe for concurrent use.
package checks
