package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/0xChicharito/validate-gentx/internal/utils/logging"
)

var (
	defaults = map[string]interface{}{
		"verbose":              false,
		"repo_root":            ".",
		Cfg_paths_genesis:      "mainnet/genesis.json",
		Cfg_paths_gentxDir:     "mainnet/gentx",
		Cfg_chain_binary:       "lumerad",
		Cfg_chain_paramsFile:   "mainnet/chain.yaml",
		Cfg_chain_validateArgs: []string{"genesis", "validate-gentx"},
	}
)

func init() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

func GetConfig() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("validate-gentx")
	viper.AddConfigPath("/etc/validate-gentx/")
	viper.AddConfigPath("$HOME/.validate-gentx")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("VALIDATE_GENTX")
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "reading config file")
		}
		// Config file not found; defaults apply
	}

	c := &Config{}

	c.paths = buildPathsConfig()
	c.chain = buildChainConfig()

	if viper.GetBool("verbose") {
		logging.SetLevel(logrus.DebugLevel)
		logging.WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}

type Config struct {
	paths *Paths
	chain *Chain
}

func (c *Config) Paths() *Paths {
	return c.paths
}

func (c *Config) Chain() *Chain {
	return c.chain
}

const (
	Cfg_paths_genesis  = "paths.genesis"
	Cfg_paths_gentxDir = "paths.gentx_dir"
)

// Paths is the launch repository layout the validator checks against.
type Paths struct {
	Genesis  string
	GentxDir string
}

func buildPathsConfig() *Paths {
	return &Paths{
		Genesis:  viper.GetString(Cfg_paths_genesis),
		GentxDir: viper.GetString(Cfg_paths_gentxDir),
	}
}
