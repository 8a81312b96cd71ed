package chainval

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/pkg/errors"
)

// ErrUnavailable classifies a chain binary that cannot be located or
// started. It is an environment failure, same class as a collector error,
// never a validation rejection.
var ErrUnavailable = errors.New("chain validator unavailable")

// Params are chain parameters forwarded to the binary. Everything beyond
// the chain id is advisory data for the report, not for the subprocess.
type Params struct {
	ChainID           string `yaml:"chain_id"`
	BondDenom         string `yaml:"bond_denom"`
	MinSelfDelegation string `yaml:"min_self_delegation"`
}

// Result is the untouched subprocess outcome. Output is combined
// stdout+stderr, verbatim; this package never parses it.
type Result struct {
	OK       bool
	ExitCode int
	Output   string
}

// Runner invokes the chain binary as an opaque subprocess.
type Runner struct {
	Binary  string
	Args    []string
	WorkDir string
}

// Run executes `<binary> <args...> <gentxPath> [--chain-id <id>]` in the
// repository root. A non-zero exit is a content rejection, not an error;
// lookup and start failures wrap ErrUnavailable.
func (r *Runner) Run(ctx context.Context, gentxPath string, params Params) (*Result, error) {
	bin, err := exec.LookPath(r.Binary)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "looking up %s: %v", r.Binary, err)
	}

	args := append([]string{}, r.Args...)
	args = append(args, gentxPath)
	if params.ChainID != "" {
		args = append(args, "--chain-id", params.ChainID)
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = r.WorkDir
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Result{OK: false, ExitCode: exitErr.ExitCode(), Output: out.String()}, nil
		}
		return nil, errors.Wrapf(ErrUnavailable, "running %s: %v", r.Binary, err)
	}

	return &Result{OK: true, ExitCode: 0, Output: out.String()}, nil
}
