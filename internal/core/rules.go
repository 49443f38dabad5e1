package core

import (
	"regexp"

	"cratescope/internal/types"
)

// Rule is one detection rule: a pattern matched against whole-file text,
// a fixed description, and the severity assigned to a match. Rules hold
// no state and are freely shareable across concurrent scans.
type Rule struct {
	Pattern     *regexp.Regexp
	Description string
	Severity    types.Severity
}

// Matches reports whether the rule fires for the given file contents.
func (r Rule) Matches(content []byte) bool {
	return r.Pattern.Match(content)
}

// DefaultRules returns the built-in rule catalog. Order is insertion
// order; it decides the order of findings within a single file but each
// rule acts independently. Adding a rule here is the only change needed
// to extend detection.
func DefaultRules() []Rule {
	return []Rule{
		// Memory safety
		{
			Pattern:     regexp.MustCompile(`unsafe\s*\{`),
			Description: "Contains unsafe blocks - review for memory safety",
			Severity:    types.SeverityHigh,
		},
		{
			Pattern:     regexp.MustCompile(`std::mem::transmute`),
			Description: "Uses memory transmutation - potential type safety issues",
			Severity:    types.SeverityHigh,
		},
		// Platform / runtime
		{
			Pattern:     regexp.MustCompile(`#!\[no_std\]`),
			Description: "No standard library usage - verify safety implementations",
			Severity:    types.SeverityMedium,
		},
		// FFI
		{
			Pattern:     regexp.MustCompile(`extern\s*"C"`),
			Description: "FFI usage detected - validate memory safety",
			Severity:    types.SeverityMedium,
		},
		// Code evaluation
		{
			Pattern:     regexp.MustCompile(`eval\s*\(`),
			Description: "Code evaluation detected - potential security risk",
			Severity:    types.SeverityCritical,
		},
		// Process execution
		{
			Pattern:     regexp.MustCompile(`std::process::Command`),
			Description: "Process execution capabilities - review for command injection",
			Severity:    types.SeverityHigh,
		},
		// Filesystem
		{
			Pattern:     regexp.MustCompile(`std::fs::(write|create|remove)`),
			Description: "File system modification - review for proper permissions",
			Severity:    types.SeverityMedium,
		},
		// Network
		{
			Pattern:     regexp.MustCompile(`TcpListener::bind`),
			Description: "Network listener - verify proper security controls",
			Severity:    types.SeverityMedium,
		},
	}
}
