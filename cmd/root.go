package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	detect "changedet/internal/detect"
)

var version = "0.1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "changedet [flags] <path>...",
	Short: "Emit rerun-if-changed directives for a set of paths",
	Long: `changedet scans the given files and directories and prints one
<prefix>:rerun-if-changed=<path> line per discovered file, so the host
build orchestrator re-runs the build step when any of them changes.

Globs use the doublestar dialect (* within a path segment, ** across
segments) and are matched against paths relative to each scanned root.`,
	Version:       version,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangeDetection(args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Flags
	rootCmd.Flags().String("prefix", detect.DefaultPrefix, "Directive prefix token")
	rootCmd.Flags().StringSlice("include", nil, "Glob patterns a file must match to be listed")
	rootCmd.Flags().StringSlice("exclude", nil, "Glob patterns for files to drop")
	rootCmd.Flags().StringSlice("exclude-path", nil, "Exact paths to drop")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Bind flags to viper
	viper.SetEnvPrefix("CHANGEDET")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.BindPFlag("prefix", rootCmd.Flags().Lookup("prefix"))
	viper.BindPFlag("include", rootCmd.Flags().Lookup("include"))
	viper.BindPFlag("exclude", rootCmd.Flags().Lookup("exclude"))
	viper.BindPFlag("exclude-path", rootCmd.Flags().Lookup("exclude-path"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

func runChangeDetection(roots []string) error {
	logger := zap.NewNop()
	if viper.GetBool("verbose") {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = dev
		defer logger.Sync()
	}

	b := detect.NewBuilder().
		Prefix(viper.GetString("prefix")).
		Logger(logger)

	// Multiple --include globs widen each other, then narrow the scan as
	// one combined filter.
	var include detect.Matcher
	for _, pattern := range viper.GetStringSlice("include") {
		m, err := detect.Glob(pattern)
		if err != nil {
			return fmt.Errorf("--include %q: %w", pattern, err)
		}
		if include == nil {
			include = m
		} else {
			include = detect.Any(include, m)
		}
	}
	if include != nil {
		b.Include(include)
	}

	for _, pattern := range viper.GetStringSlice("exclude") {
		m, err := detect.Glob(pattern)
		if err != nil {
			return fmt.Errorf("--exclude %q: %w", pattern, err)
		}
		b.Exclude(m)
	}
	for _, path := range viper.GetStringSlice("exclude-path") {
		b.Exclude(detect.Exact(path))
	}

	for _, root := range roots {
		b.Path(root)
	}

	return b.Generate()
}
