package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cours-de-latin/langdata"
)

// cli carries the configuration shared by all subcommands.
type cli struct {
	v       *viper.Viper
	cfgFile string
	log     *zap.Logger
}

// newRootCmd builds the command tree with its own viper instance.
func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "readability",
		Short: "Readability grades and style measures for tokenized text",
		Long: `readability computes surface measures of a text: readability grades,
sentence info, word usage and sentence beginnings. Input is expected to be
tokenized, one sentence per line, paragraphs separated by a blank line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.readability.yaml)")
	pf.StringP("lang", "L", "en", "language code: en, nl or de")
	pf.Bool("debug", false, "enable debug logging")
	pf.StringSlice("exceptions", nil, "extra English syllable exception files (repeatable)")
	pf.Int("cache-size", 0, "syllable cache entries, 0 for unbounded")

	c.v.BindPFlag("lang", pf.Lookup("lang"))
	c.v.BindPFlag("debug", pf.Lookup("debug"))
	c.v.BindPFlag("exceptions", pf.Lookup("exceptions"))
	c.v.BindPFlag("cache_size", pf.Lookup("cache-size"))

	c.v.SetDefault("lang", "en")

	root.AddCommand(c.measureCmd(), c.syllablesCmd(), c.tablesCmd())
	return root
}

// initConfig reads in config file and ENV variables if set.
func (c *cli) initConfig() error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			c.v.AddConfigPath(home)
		}
		c.v.SetConfigType("yaml")
		c.v.SetConfigName(".readability")
	}

	c.v.SetEnvPrefix("READABILITY")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	err := c.v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || c.cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if c.v.GetBool("debug") {
		log, lerr := zap.NewDevelopment()
		if lerr != nil {
			return lerr
		}
		c.log = log
		if err == nil {
			c.log.Debug("using config file", zap.String("path", c.v.ConfigFileUsed()))
		}
	}
	return nil
}

// language builds a registry from the current configuration and returns
// the configured language.
func (c *cli) language() (*langdata.Language, error) {
	opts := []langdata.Option{langdata.WithLogger(c.log)}
	if size := c.v.GetInt("cache_size"); size > 0 {
		cache, err := langdata.NewLRUCache(size)
		if err != nil {
			return nil, err
		}
		opts = append(opts, langdata.WithCache(cache))
	}
	for _, path := range c.v.GetStringSlice("exceptions") {
		opts = append(opts, langdata.WithExceptionsFile(path))
	}

	reg, err := langdata.New(opts...)
	if err != nil {
		return nil, err
	}
	return reg.Language(c.v.GetString("lang"))
}
