package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coral-mesh/schedlayout/internal/btfprobe"
	"github.com/coral-mesh/schedlayout/internal/buildcfg"
	"github.com/coral-mesh/schedlayout/internal/cli/helpers"
	"github.com/coral-mesh/schedlayout/internal/offsets"
	"github.com/coral-mesh/schedlayout/internal/sched/rqoffsets"
)

func newBTFCmd(logFlags *helpers.LogFlags) *cobra.Command {
	var (
		flags   artifactFlags
		source  string
		members []string
		name    string
	)

	cmd := &cobra.Command{
		Use:   "btf",
		Short: "Write offsets read from kernel BTF",
		Long: `Read member offsets of kernel structures from BTF, either the running
kernel's (/sys/kernel/btf/vmlinux) or a vmlinux/BTF file, and write them in the
same artifact format as generate.

A member missing from the BTF fails the command without writing anything.
Under sched_muqss no offsets are published.

Examples:
  schedlayout btf --output -
  schedlayout btf --btf ./vmlinux --member rq.nr_pinned --member rq.nr_running`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := flags.resolve(cmd, logFlags)
			if err != nil {
				return err
			}
			logger := logFlags.Logger(cmd, "btf")

			pairs := make([]btfprobe.Pair, 0, len(members))
			for _, m := range members {
				p, err := btfprobe.ParsePair(m)
				if err != nil {
					return err
				}
				pairs = append(pairs, p)
			}

			var entries []offsets.Entry
			if buildcfg.MuQSS {
				logger.Info().Msg("alternate scheduler selected, no offsets published")
			} else {
				spec, err := btfprobe.Load(logger, source)
				if err != nil {
					return err
				}
				entries, err = btfprobe.Entries(spec, pairs)
				if err != nil {
					return fmt.Errorf("failed to resolve offsets: %w", err)
				}
			}

			artifact, err := offsets.Build(name, offsets.CurrentConfig(), entries)
			if err != nil {
				return fmt.Errorf("failed to build offsets: %w", err)
			}
			return writeArtifact(cmd, logger, profile.Output, artifact)
		},
	}

	flags.add(cmd)
	cmd.Flags().StringVar(&source, "btf", btfprobe.KernelSource, "BTF source: \"kernel\" or a path to a vmlinux/BTF file")
	cmd.Flags().StringArrayVar(&members, "member", []string{"rq.nr_pinned"}, "Member to measure as struct.member (repeatable)")
	cmd.Flags().StringVar(&name, "name", rqoffsets.Name, "Artifact name, used for the include guard")

	return cmd
}
