package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/0xChicharito/validate-gentx/pkg/chainval"
)

const (
	Cfg_chain_binary       = "chain.binary"
	Cfg_chain_validateArgs = "chain.validate_args"
	Cfg_chain_paramsFile   = "chain.params_file"
)

// Chain configures the content-validator subprocess. ParamsFile is
// repo-relative: the launch repository owns its chain parameters, the tool
// config only says where to find them.
type Chain struct {
	Binary       string
	ValidateArgs []string
	ParamsFile   string
}

func buildChainConfig() *Chain {
	return &Chain{
		Binary:       viper.GetString(Cfg_chain_binary),
		ValidateArgs: viper.GetStringSlice(Cfg_chain_validateArgs),
		ParamsFile:   viper.GetString(Cfg_chain_paramsFile),
	}
}

// LoadParams reads the chain parameter file from the repository checkout.
// An absent file is not an error; validation then runs without parameters.
func (c *Chain) LoadParams(repoRoot string) (chainval.Params, error) {
	params := chainval.Params{}

	d, err := os.ReadFile(filepath.Join(repoRoot, filepath.FromSlash(c.ParamsFile)))
	if err != nil {
		if os.IsNotExist(err) {
			return params, nil
		}
		return params, errors.Wrap(err, "reading chain params file")
	}

	if err := yaml.Unmarshal(d, &params); err != nil {
		return params, errors.Wrap(err, "unmarshalling chain params")
	}

	return params, nil
}
