// Package input parses the two-section puzzle text into rules and sequences.
//
// # Format
//
// The input has two sections separated by the first empty line:
//
//	47|53
//	97|13
//	97|61
//
//	75,47,61,53,29
//	97,61,53,29,13
//
// Section 1 holds one precedence rule per line ("A|B": A before B).
// Section 2 holds one comma-separated sequence per line. Empty lines in
// section 2 are ignored, so a trailing newline is harmless. Carriage
// returns at line ends are stripped.
//
// # Errors
//
// Parsing stops at the first bad line and returns a coded error from
// [github.com/bsaintjo/advent2024/pkg/errors] carrying the 1-based line number:
//
//   - MALFORMED_RULE for a rule line without "|" or with a non-numeric page
//   - MALFORMED_SEQUENCE for a sequence line with a non-numeric page
//   - MISSING_SEPARATOR when the input ends before the empty line
//
// No partial result is returned with an error.
package input
