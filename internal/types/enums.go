package types

import (
	"fmt"
	"strings"
)

// Severity classifies a security finding, ordered by descending risk.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

// Rank returns an integer rank for comparison (Info=0, Critical=4).
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a severity name case-insensitively.
func ParseSeverity(value string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "CRITICAL":
		return SeverityCritical, nil
	case "HIGH":
		return SeverityHigh, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "LOW":
		return SeverityLow, nil
	case "INFO":
		return SeverityInfo, nil
	default:
		return "", fmt.Errorf("invalid severity: %s", value)
	}
}

// TargetKindCustomBuild marks a build target that runs arbitrary code
// before the main build (a cargo build script).
const TargetKindCustomBuild = "custom-build"
