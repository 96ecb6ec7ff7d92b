// Package constants defines shared configuration constants.
package constants

var (
	// ConfigFile is the build profile looked up in the working directory.
	ConfigFile = "schedlayout.yaml"

	// KconfigFile is the kernel-style configuration accepted by `tags --kconfig`.
	KconfigFile = ".config"

	// DefaultArtifactPath is where `generate` writes when no output is given.
	DefaultArtifactPath = "include/generated/rq-offsets.h"

	DefaultArtifactFormat = "c"

	DefaultLogLevel = "info"
)
