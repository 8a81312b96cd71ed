package gentx

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const msgCreateValidator = "MsgCreateValidator"

// Document is the subset of a gentx the report surfaces. Semantic
// verification of the full transaction stays with the chain binary.
type Document struct {
	Moniker          string
	ValidatorAddress string
	DelegatorAddress string
	Denom            string
	Amount           string
}

// Expect carries chain parameters used for advisory checks only.
type Expect struct {
	BondDenom         string
	MinSelfDelegation string
}

// Inspection is advisory: warnings never fail validation. An unreadable
// or malformed gentx is still the chain binary's rejection to make.
type Inspection struct {
	Doc      *Document
	Warnings []string
}

type gentxFile struct {
	Body struct {
		Messages []gentxMsg `json:"messages"`
	} `json:"body"`
}

type gentxMsg struct {
	Type        string `json:"@type"`
	Description struct {
		Moniker string `json:"moniker"`
	} `json:"description"`
	ValidatorAddress string `json:"validator_address"`
	DelegatorAddress string `json:"delegator_address"`
	Value            struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	} `json:"value"`
}

// Inspect reads the candidate gentx and derives a summary plus advisory
// warnings (naming convention, bond denom, minimum self-delegation).
func Inspect(repoRoot, relPath string, expect Expect) Inspection {
	insp := Inspection{}

	raw, err := os.ReadFile(filepath.Join(repoRoot, filepath.FromSlash(relPath)))
	if err != nil {
		insp.Warnings = append(insp.Warnings, fmt.Sprintf("could not read gentx file `%s`: %v", relPath, err))
		return insp
	}

	var f gentxFile
	if err := json.Unmarshal(raw, &f); err != nil {
		insp.Warnings = append(insp.Warnings, fmt.Sprintf("gentx file `%s` is not valid JSON: %v", relPath, err))
		return insp
	}

	msg := createValidatorMsg(f.Body.Messages)
	if msg == nil {
		insp.Warnings = append(insp.Warnings, fmt.Sprintf("no %s message found in `%s`", msgCreateValidator, relPath))
		return insp
	}

	insp.Doc = &Document{
		Moniker:          msg.Description.Moniker,
		ValidatorAddress: msg.ValidatorAddress,
		DelegatorAddress: msg.DelegatorAddress,
		Denom:            msg.Value.Denom,
		Amount:           msg.Value.Amount,
	}

	insp.Warnings = append(insp.Warnings, namingWarnings(relPath, insp.Doc)...)
	insp.Warnings = append(insp.Warnings, expectWarnings(insp.Doc, expect)...)

	return insp
}

func createValidatorMsg(msgs []gentxMsg) *gentxMsg {
	for i := range msgs {
		if strings.HasSuffix(msgs[i].Type, msgCreateValidator) {
			return &msgs[i]
		}
	}

	return nil
}

func namingWarnings(relPath string, doc *Document) []string {
	if doc.ValidatorAddress == "" {
		return nil
	}

	expected := fmt.Sprintf("gentx-%s.json", doc.ValidatorAddress)
	if base := path.Base(relPath); base != expected {
		return []string{fmt.Sprintf("file name `%s` does not follow the recommended convention `%s`", base, expected)}
	}

	return nil
}

func expectWarnings(doc *Document, expect Expect) []string {
	var warnings []string

	if expect.BondDenom != "" && doc.Denom != "" && doc.Denom != expect.BondDenom {
		warnings = append(warnings, fmt.Sprintf("self-delegation denom `%s` does not match the chain bond denom `%s`", doc.Denom, expect.BondDenom))
	}

	if expect.MinSelfDelegation != "" && doc.Amount != "" {
		min, okMin := new(big.Int).SetString(expect.MinSelfDelegation, 10)
		amt, okAmt := new(big.Int).SetString(doc.Amount, 10)
		if okMin && okAmt && amt.Cmp(min) < 0 {
			warnings = append(warnings, fmt.Sprintf("self-delegation %s is below the expected minimum %s", doc.Amount, expect.MinSelfDelegation))
		}
	}

	return warnings
}
