package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/metal3d/cakesort/javascript"
	"github.com/metal3d/cakesort/ordering"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// CheckConfig holds the settings of the check command. The yaml keys are the
// flag names, so a printed configuration can be used as a .cakesort file.
type CheckConfig struct {
	Verbose          bool     `yaml:"verbose"`
	ConstructorFirst bool     `yaml:"constructor-first"`
	Delimiter        string   `yaml:"delimiter"`
	Extensions       []string `yaml:"ext"`
	Exclude          []string `yaml:"exclude"`
	Jobs             int      `yaml:"jobs"`
}

func defaultConfig() *CheckConfig {
	return &CheckConfig{
		ConstructorFirst: true,
		Delimiter:        ordering.DefaultDelimiter,
		Extensions:       append([]string(nil), javascript.Extensions...),
		Exclude:          []string{"**/node_modules/**"},
		Jobs:             runtime.NumCPU(),
	}
}

// Options returns the checker options of the configuration.
func (c *CheckConfig) Options() ordering.Options {
	return ordering.Options{
		Delimiter:        c.Delimiter,
		ConstructorFirst: c.ConstructorFirst,
	}
}

func initializeViper(c *cobra.Command) error {
	v := viper.New()
	v.SetConfigName(".cakesort")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	v.SetEnvPrefix("CAKESORT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return bindFlags(c, v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := f.Name
		if err != nil || f.Changed || !v.IsSet(name) {
			return
		}
		// ensure that the value is with the correct type
		switch f.Value.Type() {
		case "stringSlice":
			err = f.Value.Set(strings.Join(v.GetStringSlice(name), ","))
		default:
			err = cmd.Flags().Set(name, fmt.Sprintf("%v", v.GetString(name)))
		}
		if err != nil {
			err = fmt.Errorf("invalid value for %s: %w", name, err)
		}
	})
	return err
}

func printConfigFile(config *CheckConfig, output ...io.Writer) error {
	var out io.Writer = os.Stdout
	if len(output) > 0 {
		out = output[0]
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	return enc.Encode(config)
}
