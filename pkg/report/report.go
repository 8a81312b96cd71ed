package report

import (
	"fmt"
	"strings"

	"github.com/0xChicharito/validate-gentx/pkg/chainval"
	"github.com/0xChicharito/validate-gentx/pkg/gentx"
)

type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// Report is the markdown result consumed by humans and by the CI
// comment-posting step. Formatting is deterministic for identical inputs.
type Report struct {
	Status Status
	Body   string
}

// NothingToValidate is the neutral outcome for an empty change set; the
// structural rules are never consulted for it.
func NothingToValidate() Report {
	return Report{
		Status: StatusPassed,
		Body:   "## Nothing to validate\n\nNo files were added or modified between the given refs.",
	}
}

// Format renders the validation outcome. The final status is the logical
// AND of the structural outcome and the chain result when content
// validation ran; chain diagnostics are appended verbatim.
func Format(outcome gentx.Outcome, insp *gentx.Inspection, chain *chainval.Result) Report {
	passed := outcome.Passed && (chain == nil || chain.OK)

	var b strings.Builder

	if passed {
		b.WriteString("## Gentx validation passed ✅\n\n")
		b.WriteString("The change set adds a single gentx file and touches nothing it must not.\n\n")
	} else {
		b.WriteString("## Gentx validation failed ❌\n\n")
	}

	for _, r := range outcome.Reasons {
		fmt.Fprintf(&b, "### ❌ %s\n\n%s\n\n", r.Title, r.Guidance)
	}

	if insp != nil {
		writeInspection(&b, insp)
	}

	if chain != nil {
		writeChainResult(&b, chain)
	}

	status := StatusPassed
	if !passed {
		status = StatusFailed
	}

	return Report{Status: status, Body: strings.TrimRight(b.String(), "\n")}
}

func writeInspection(b *strings.Builder, insp *gentx.Inspection) {
	if doc := insp.Doc; doc != nil {
		b.WriteString("### Submission summary\n\n")
		fmt.Fprintf(b, "| Moniker | Validator address | Self-delegation |\n|---|---|---|\n| %s | `%s` | %s%s |\n\n",
			doc.Moniker, doc.ValidatorAddress, doc.Amount, doc.Denom)
	}

	if len(insp.Warnings) > 0 {
		b.WriteString("### ⚠️ Warnings\n\n")
		for _, w := range insp.Warnings {
			fmt.Fprintf(b, "- %s\n", w)
		}
		b.WriteString("\n")
	}
}

func writeChainResult(b *strings.Builder, chain *chainval.Result) {
	b.WriteString("### Chain validation output\n\n")

	if chain.OK {
		b.WriteString("The chain binary accepted the gentx (exit code 0).\n")
	} else {
		fmt.Fprintf(b, "The chain binary rejected the gentx (exit code %d).\n", chain.ExitCode)
	}

	if out := strings.TrimSpace(chain.Output); out != "" {
		fmt.Fprintf(b, "\n```\n%s\n```\n", out)
	}
}
