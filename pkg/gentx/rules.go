package gentx

import (
	"fmt"
	"path"
	"strings"

	"github.com/0xChicharito/validate-gentx/pkg/changeset"
)

// Rules holds the repository layout the structural checks run against.
type Rules struct {
	GenesisPath string
	GentxDir    string
}

func DefaultRules() Rules {
	return Rules{
		GenesisPath: "mainnet/genesis.json",
		GentxDir:    "mainnet/gentx",
	}
}

// Validate applies every rule and accumulates all failures in rule
// declaration order. It never short-circuits; independent violations are
// reported together so the contributor fixes them in one round-trip.
func (r Rules) Validate(cs changeset.ChangeSet) Outcome {
	o := Outcome{}

	if cs.Contains(r.GenesisPath) {
		o.Reasons = append(o.Reasons, r.genesisReason())
	}

	matched := r.gentxFiles(cs)
	switch len(matched) {
	case 0:
		o.Reasons = append(o.Reasons, r.noGentxReason())
	case 1:
		o.Candidate = matched[0]
	default:
		o.Reasons = append(o.Reasons, r.multipleGentxReason(matched))
	}

	o.Passed = len(o.Reasons) == 0

	return o
}

func (r Rules) gentxFiles(cs changeset.ChangeSet) []string {
	var matched []string

	for _, p := range cs {
		if path.Dir(p) == r.GentxDir && strings.HasSuffix(p, ".json") {
			matched = append(matched, p)
		}
	}

	return matched
}

func (r Rules) genesisReason() Reason {
	return Reason{
		Title: "genesis file modification forbidden",
		Guidance: fmt.Sprintf(
			"`%s` is assembled by the maintainers from the collected gentx files once the submission window closes. "+
				"Remove it from this change set; your submission should only add a gentx file under `%s/`.",
			r.GenesisPath, r.GentxDir),
	}
}

func (r Rules) noGentxReason() Reason {
	return Reason{
		Title: "no gentx file present",
		Guidance: fmt.Sprintf(
			"Add exactly one gentx file under `%s/`, following the naming convention `gentx-<validator-address>.json`.",
			r.GentxDir),
	}
}

func (r Rules) multipleGentxReason(matched []string) Reason {
	var b strings.Builder

	b.WriteString("The following gentx files were found:\n\n")
	for _, p := range matched {
		fmt.Fprintf(&b, "- `%s`\n", p)
	}
	b.WriteString("\nSubmit one gentx per pull request; split the extra files into separate submissions.")

	return Reason{
		Title:    fmt.Sprintf("multiple gentx files present (%d found)", len(matched)),
		Guidance: b.String(),
	}
}
