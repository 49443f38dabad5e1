package adapters

import (
	"os"
	"regexp"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"cratescope/internal/core"
	"cratescope/internal/types"
)

// RulesFileAdapter loads additional detection rules from a YAML file so
// the catalog can be extended without a rebuild.
type RulesFileAdapter struct{}

func NewRulesFileAdapter() RulesFileAdapter {
	return RulesFileAdapter{}
}

type rulesFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`
	Severity    string `yaml:"severity"`
}

func (a RulesFileAdapter) Load(path string) ([]core.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("rules file not found").
			WithCause(err)
	}
	var decoded rulesFile
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse rules yaml").
			WithCause(err)
	}
	rules := make([]core.Rule, 0, len(decoded.Rules))
	for _, entry := range decoded.Rules {
		pattern, err := regexp.Compile(entry.Pattern)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid rule pattern: " + entry.Pattern).
				WithCause(err)
		}
		severity, err := types.ParseSeverity(entry.Severity)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid rule severity").
				WithCause(err)
		}
		rules = append(rules, core.Rule{
			Pattern:     pattern,
			Description: entry.Description,
			Severity:    severity,
		})
	}
	return rules, nil
}
