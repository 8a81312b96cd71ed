package gentx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0xChicharito/validate-gentx/pkg/changeset"
)

func TestValidateSingleGentx(t *testing.T) {
	cs := changeset.New("mainnet/gentx/gentx-abc123.json")

	o := DefaultRules().Validate(cs)

	assert.True(t, o.Passed)
	assert.Empty(t, o.Reasons)
	assert.Equal(t, "mainnet/gentx/gentx-abc123.json", o.Candidate)
}

func TestValidateGenesisModified(t *testing.T) {
	cs := changeset.New("mainnet/genesis.json", "mainnet/gentx/gentx-abc123.json")

	o := DefaultRules().Validate(cs)

	assert.False(t, o.Passed)
	if assert.Len(t, o.Reasons, 1) {
		assert.Equal(t, "genesis file modification forbidden", o.Reasons[0].Title)
	}

	// the single gentx file still matched
	assert.Equal(t, "mainnet/gentx/gentx-abc123.json", o.Candidate)
}

func TestValidateMultipleGentx(t *testing.T) {
	cs := changeset.New("mainnet/gentx/a.json", "mainnet/gentx/b.json")

	o := DefaultRules().Validate(cs)

	assert.False(t, o.Passed)
	if assert.Len(t, o.Reasons, 1) {
		assert.Equal(t, "multiple gentx files present (2 found)", o.Reasons[0].Title)
		assert.Contains(t, o.Reasons[0].Guidance, "mainnet/gentx/a.json")
		assert.Contains(t, o.Reasons[0].Guidance, "mainnet/gentx/b.json")
	}
	assert.Empty(t, o.Candidate)
}

func TestValidateNoGentx(t *testing.T) {
	cs := changeset.New("README.md")

	o := DefaultRules().Validate(cs)

	assert.False(t, o.Passed)
	if assert.Len(t, o.Reasons, 1) {
		assert.Equal(t, "no gentx file present", o.Reasons[0].Title)
	}
}

func TestValidateAccumulatesReasons(t *testing.T) {
	cs := changeset.New("mainnet/genesis.json")

	o := DefaultRules().Validate(cs)

	assert.False(t, o.Passed)
	if assert.Len(t, o.Reasons, 2) {
		assert.Equal(t, "genesis file modification forbidden", o.Reasons[0].Title)
		assert.Equal(t, "no gentx file present", o.Reasons[1].Title)
	}
}

func TestValidateIgnoresUnrelatedPaths(t *testing.T) {
	cs := changeset.New(
		"README.md",
		"mainnet/gentx/gentx-abc123.json",
		"mainnet/gentx/notes.txt",
		"testnet/gentx/gentx-def456.json",
	)

	o := DefaultRules().Validate(cs)

	assert.True(t, o.Passed)
	assert.Equal(t, "mainnet/gentx/gentx-abc123.json", o.Candidate)
}

func TestValidateIdempotent(t *testing.T) {
	cs := changeset.New("mainnet/genesis.json", "mainnet/gentx/a.json", "mainnet/gentx/b.json")

	first := DefaultRules().Validate(cs)
	second := DefaultRules().Validate(cs)

	assert.Equal(t, first, second)
}
