// SPDX-License-Identifier: MIT

// Command kernelbench times the graph kernels on the built-in fixture graphs
// and inspects fixtures.
//
//	kernelbench run g1 g2 --iterations 1000
//	kernelbench inspect g2
//	kernelbench list
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvkernel/bench"
	"github.com/katalvlaran/lvkernel/config"
)

var (
	rootCmd = &cobra.Command{
		Use:           "kernelbench",
		Short:         "Graph kernel timing harness",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd)
		},
	}

	configPath string
	logLevel   string
	iterations int

	cfg    *config.Config
	logger zerolog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a config file (yaml, toml, json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")
	runCmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "Fit/transform cycles per kernel (default from config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(listCmd)
}

// loadConfig resolves defaults, file, env and flags, in increasing priority.
func loadConfig(cmd *cobra.Command) error {
	cfg = config.New()
	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			return err
		}
	}
	if logLevel != "" {
		cfg.Set("logging.level", logLevel)
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Set("bench.iterations", iterations)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger = cfg.CreateLoggerTo(os.Stderr)

	return nil
}

var runCmd = &cobra.Command{
	Use:   "run [ref] [query]",
	Short: "Time every kernel fitting ref and transforming query (default g1 g2)",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		refName, queryName := "g1", "g2"
		if len(args) > 0 {
			refName = args[0]
		}
		if len(args) > 1 {
			queryName = args[1]
		}
		ref, err := bench.Fixtures(refName)
		if err != nil {
			return err
		}
		query, err := bench.Fixtures(queryName)
		if err != nil {
			return err
		}

		cases, err := bench.Cases(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		results := make([]bench.Result, 0, len(cases))
		for _, c := range cases {
			logger.Info().Str("case", c.Name).Int("iterations", c.Iterations).
				Str("ref", refName).Str("query", queryName).Msg("running")
			r, err := bench.Run(ctx, c, ref, query)
			if err != nil {
				return err
			}
			logger.Debug().Str("case", c.Name).Dur("avg", r.AvgLatency).Float64("score", r.Score).Msg("done")
			results = append(results, r)
		}

		return bench.Report(cmd.OutOrStdout(), results)
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <fixture>",
	Short: "Print size, labels and connected components of a fixture",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := bench.Fixture(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s: %d nodes, %d edges, directed=%v\n", args[0], g.Order(), g.Size(), g.Directed())
		for _, lc := range g.LabelHistogram() {
			fmt.Fprintf(out, "  label %d: %d nodes\n", lc.Label, lc.Count)
		}

		var comps [][]graph.Node
		switch gg := g.AsGonum().(type) {
		case graph.Undirected:
			comps = topo.ConnectedComponents(gg)
		case graph.Directed:
			comps = topo.TarjanSCC(gg)
		}
		fmt.Fprintf(out, "  components: %d\n", len(comps))
		for i, c := range comps {
			ids := make([]int, len(c))
			for j, n := range c {
				ids[j] = int(n.ID())
			}
			sort.Ints(ids)
			fmt.Fprintf(out, "    #%d %v\n", i, ids)
		}

		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List fixture names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, n := range bench.FixtureNames() {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
	},
}
