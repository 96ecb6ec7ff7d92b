package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/schedlayout/internal/config"
	"github.com/coral-mesh/schedlayout/internal/constants"
)

func newTagsCmd() *cobra.Command {
	var (
		profilePath string
		kconfigPath string
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Print the build tags for a profile or kernel config",
		Long: `Resolve a build profile or a kernel-style .config into the comma-separated
Go build tags that select the same features:

  go build -tags "$(schedlayout tags --kconfig .config)" ./...

Without flags, ` + constants.ConfigFile + ` in the working directory is used, then
` + constants.KconfigFile + `. Conflicting scheduler selections are rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if profilePath != "" && kconfigPath != "" {
				return fmt.Errorf("--profile and --kconfig are mutually exclusive")
			}

			if profilePath == "" && kconfigPath == "" {
				switch {
				case fileExists(constants.ConfigFile):
					profilePath = constants.ConfigFile
				case fileExists(constants.KconfigFile):
					kconfigPath = constants.KconfigFile
				default:
					return fmt.Errorf("no --profile or --kconfig given and neither %s nor %s found",
						constants.ConfigFile, constants.KconfigFile)
				}
			}

			var features config.Features
			if kconfigPath != "" {
				f, err := config.LoadKconfig(kconfigPath)
				if err != nil {
					return err
				}
				features = f
			} else {
				p, err := config.LoadProfile(profilePath)
				if err != nil {
					return err
				}
				features = p.Features
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(features.Tags(), ","))
			return err
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Build profile (YAML)")
	cmd.Flags().StringVar(&kconfigPath, "kconfig", "", "Kernel-style .config file")

	return cmd
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
