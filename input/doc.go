// Package input loads puzzle inputs and defines the error kinds shared by
// every day's parser.
//
// What:
//
//   - Lines reads one logical record per line from an io.Reader, normalising
//     text to Unicode NFC and dropping blank lines and trailing '\r'.
//   - ReadLines / ReadString are the file-path conveniences used by the CLI.
//   - ParseError reports a malformed record (1-based line number + raw text).
//   - ErrInvalidInput is the root sentinel for logically invalid input
//     (well-formed records that cannot produce a meaningful answer).
//
// Errors:
//
//   - *ParseError: unwrap to the package-specific cause with errors.Is.
//   - ErrInvalidInput: every day package wraps its own invariant violations
//     around it, so callers can branch on the error kind alone.
package input
