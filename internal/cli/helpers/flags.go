package helpers

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/coral-mesh/schedlayout/internal/logging"
)

// AddFormatFlag adds a standard --format/-o flag to a command.
func AddFormatFlag(cmd *cobra.Command, formatVar *string, defaultFormat OutputFormat, supportedFormats []OutputFormat) {
	formatNames := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		formatNames[i] = string(f)
	}

	description := fmt.Sprintf("Output format (%s)", strings.Join(formatNames, ", "))
	cmd.Flags().StringVarP(formatVar, "format", "o", string(defaultFormat), description)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return formatNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// ValidateFormat checks if the format is in the supported list.
func ValidateFormat(format string, supported []OutputFormat) error {
	for _, s := range supported {
		if format == string(s) {
			return nil
		}
	}

	supportedNames := make([]string, len(supported))
	for i, s := range supported {
		supportedNames[i] = string(s)
	}

	return fmt.Errorf("unsupported format %q, must be one of: %s",
		format, strings.Join(supportedNames, ", "))
}

// LogFlags holds the global logging flag values.
type LogFlags struct {
	Level  string
	Pretty bool
}

// AddFlags adds logging flags to a FlagSet.
func (f *LogFlags) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(&f.Level, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	flags.BoolVar(&f.Pretty, "log-pretty", false, "Human-readable log output")
}

// Logger returns a logger writing to the command's error stream.
func (f *LogFlags) Logger(cmd *cobra.Command, component string) zerolog.Logger {
	return logging.NewWithComponent(logging.Config{
		Level:  f.Level,
		Pretty: f.Pretty,
		Output: cmd.ErrOrStderr(),
	}, component)
}
