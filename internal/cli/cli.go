package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xChicharito/validate-gentx/internal/config"
	"github.com/0xChicharito/validate-gentx/internal/utils/logging"
)

// Exit codes per the tool contract: validation rejections are distinct
// from environment failures so callers can tell "fix your PR" apart from
// "fix the CI job".
const (
	ExitPassed = 0
	ExitFailed = 1
	ExitEnv    = 2
)

var (
	rootCmd = &cobra.Command{
		Use:           "validate-gentx",
		Short:         "check that a change set is a valid single-validator gentx contribution",
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Execute() int {
	regCommands()

	// persistent so the root invocation and the check subcommand share
	// one flag set and a single viper binding
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase verbosity")
	rootCmd.PersistentFlags().String("base", "", "base ref of the change set")
	rootCmd.PersistentFlags().String("head", "", "head ref of the change set")
	rootCmd.PersistentFlags().String("repo-root", ".", "path to the launch repository checkout")
	rootCmd.PersistentFlags().Bool("structural-only", false, "skip chain binary content validation")
	rootCmd.PersistentFlags().String("chain-binary", "lumerad", "chain validator binary")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("base", rootCmd.PersistentFlags().Lookup("base"))
	viper.BindPFlag("head", rootCmd.PersistentFlags().Lookup("head"))
	viper.BindPFlag("repo_root", rootCmd.PersistentFlags().Lookup("repo-root"))
	viper.BindPFlag("structural_only", rootCmd.PersistentFlags().Lookup("structural-only"))
	viper.BindPFlag(config.Cfg_chain_binary, rootCmd.PersistentFlags().Lookup("chain-binary"))

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errValidationFailed) {
			return ExitFailed
		}

		// anything else is a collector or subprocess environment failure
		logging.WithError(err).Error("validate-gentx aborted")

		return ExitEnv
	}

	return ExitPassed
}
