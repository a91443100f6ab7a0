package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"burnscar/internal/config"
	"burnscar/internal/sims/wildfire"
)

type options struct {
	envFile string
	params  map[string]string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "wildfire",
		Short: "Run the stochastic wildfire erodibility model on a raster grid.",
		Long: `wildfire seeds fires that raise erodibility around random nodes and ` +
			`relaxes the field back toward its baseline. Settings come from defaults, ` +
			`an optional .env file, BURNSCAR_* variables and --param key=value pairs, ` +
			`in increasing precedence.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before parsing the environment")
	root.PersistentFlags().StringToStringVar(&opts.params, "param", nil, "override a model parameter (repeatable, key=value)")

	root.AddCommand(newRunCmd(opts), newSweepCmd(opts), newParamsCmd(opts))
	return root
}

func (o *options) loadConfig() (wildfire.Config, error) {
	cfg := wildfire.DefaultConfig()
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return cfg, err
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return wildfire.ApplyMap(cfg, o.params), nil
}

func newParamsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective model parameters.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, group := range wildfire.Snapshot(cfg).Groups {
				fmt.Fprintf(out, "[%s]\n", group.Name)
				for _, p := range group.Params {
					fmt.Fprintf(out, "  %-18s %s\n", p.Key, p.Value)
				}
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
