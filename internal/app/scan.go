package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"cratescope/internal/core"
)

func (s Service) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return ScanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}

	log.Ctx(ctx).Info().Str("manifest", manifestPath).Msg("starting dependency analysis")
	if req.Deep {
		// Reserved flag: deep scanning is not implemented yet and the
		// default scan runs regardless.
		log.Ctx(ctx).Debug().Msg("deep scan requested; running default scan")
	}

	rules := core.DefaultRules()
	if rulesFile := strings.TrimSpace(req.RulesFile); rulesFile != "" {
		extra, err := s.RuleLoader.Load(rulesFile)
		if err != nil {
			return ScanResult{}, err
		}
		rules = append(rules, extra...)
	}

	analyzer := core.NewAnalyzer(s.Metadata, core.NewPackageScanner(rules))
	analysis, err := analyzer.Analyze(ctx, manifestPath)
	if err != nil {
		return ScanResult{}, err
	}
	return ScanResult{Analysis: analysis}, nil
}
