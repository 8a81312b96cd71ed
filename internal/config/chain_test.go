package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadParams(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "mainnet"), 0755); err != nil {
		t.Fatal(err)
	}

	yaml := "chain_id: lumera-mainnet-1\nbond_denom: ulume\nmin_self_delegation: \"1000000\"\n"
	if err := os.WriteFile(filepath.Join(root, "mainnet", "chain.yaml"), []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	c := &Chain{ParamsFile: "mainnet/chain.yaml"}
	params, err := c.LoadParams(root)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "lumera-mainnet-1", params.ChainID)
	assert.Equal(t, "ulume", params.BondDenom)
	assert.Equal(t, "1000000", params.MinSelfDelegation)
}

func TestLoadParamsAbsentFile(t *testing.T) {
	c := &Chain{ParamsFile: "mainnet/chain.yaml"}

	params, err := c.LoadParams(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	assert.Empty(t, params.ChainID)
}
