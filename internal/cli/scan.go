package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cratescope/internal/app"
	"cratescope/internal/report"
)

type scanOptions struct {
	ManifestPath string
	Format       string
	RulesFile    string
	Deep         bool
}

func newScanCommand() *cobra.Command {
	opts := scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Analyze a manifest's dependencies for security risks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ManifestPath, "manifest-path", "Cargo.toml", "Path to Cargo.toml")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format (text, json)")
	cmd.Flags().StringVar(&opts.RulesFile, "rules", "", "Extra detection rules file (yaml)")
	cmd.Flags().BoolVar(&opts.Deep, "deep", false, "Enable deep scanning (reserved)")

	_ = viper.BindPFlag("manifest_path", cmd.Flags().Lookup("manifest-path"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("rules", cmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("deep", cmd.Flags().Lookup("deep"))

	return cmd
}

func runScan(ctx context.Context, cmd *cobra.Command, opts scanOptions) error {
	service := app.NewService()
	result, err := service.Scan(ctx, app.ScanRequest{
		ManifestPath: resolveString(cmd, opts.ManifestPath, "manifest_path", "manifest-path"),
		RulesFile:    resolveString(cmd, opts.RulesFile, "rules", "rules"),
		Deep:         resolveBool(cmd, opts.Deep, "deep", "deep"),
	})
	if err != nil {
		return err
	}
	format := resolveString(cmd, opts.Format, "format", "format")
	return report.Render(os.Stdout, result.Analysis, format)
}

// resolveString prefers an explicitly set flag over the viper-resolved
// value so env vars and config files fill in unset flags only.
func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	flag := cmd.Flags().Lookup(name)
	return flag != nil && flag.Changed
}
