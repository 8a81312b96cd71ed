package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xChicharito/validate-gentx/internal/config"
	"github.com/0xChicharito/validate-gentx/internal/utils/logging"
	"github.com/0xChicharito/validate-gentx/pkg/chainval"
	"github.com/0xChicharito/validate-gentx/pkg/changeset"
	"github.com/0xChicharito/validate-gentx/pkg/gentx"
	"github.com/0xChicharito/validate-gentx/pkg/report"
)

// errValidationFailed separates contributor rejections (exit 1) from
// environment failures (exit 2). The report has already been printed when
// it is returned.
var errValidationFailed = errors.New("validation failed")

var (
	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "validate the change set between two refs",
		RunE:  runCheck,
	}
)

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.GetConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}

	base := viper.GetString("base")
	head := viper.GetString("head")
	root := viper.GetString("repo_root")
	if base == "" || head == "" {
		return errors.New("--base and --head are required")
	}

	cs, err := changeset.NewCollector(root).Collect(ctx, base, head)
	if err != nil {
		return err
	}

	logging.WithField("files", len(cs)).Debug("change set collected")

	if len(cs) == 0 {
		return emit(cmd, report.NothingToValidate())
	}

	rules := gentx.Rules{
		GenesisPath: cfg.Paths().Genesis,
		GentxDir:    cfg.Paths().GentxDir,
	}
	outcome := rules.Validate(cs)

	var insp *gentx.Inspection
	var chainRes *chainval.Result

	if outcome.Passed {
		params, err := cfg.Chain().LoadParams(root)
		if err != nil {
			return err
		}

		i := gentx.Inspect(root, outcome.Candidate, gentx.Expect{
			BondDenom:         params.BondDenom,
			MinSelfDelegation: params.MinSelfDelegation,
		})
		insp = &i

		if !viper.GetBool("structural_only") {
			runner := &chainval.Runner{
				Binary:  cfg.Chain().Binary,
				Args:    cfg.Chain().ValidateArgs,
				WorkDir: root,
			}

			chainRes, err = runner.Run(ctx, outcome.Candidate, params)
			if err != nil {
				return err
			}
		}
	}

	return emit(cmd, report.Format(outcome, insp, chainRes))
}

func emit(cmd *cobra.Command, rep report.Report) error {
	fmt.Fprintln(cmd.OutOrStdout(), rep.Body)

	if rep.Status == report.StatusFailed {
		return errValidationFailed
	}

	return nil
}
