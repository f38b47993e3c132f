package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/ballsim/internal/optim"
	"github.com/spf13/cobra"
)

var (
	sweepParams []string
	sweepMetric string
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "grid search physics parameters for the lowest metric",
		Example: "  ballsim sweep --param restitution=0.2:0.9:4 --param bounce_factor=0.5:0.8:3 --metric max_overlap",
		RunE:    sweep,
	}
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "number of ticks (0 keeps the scenario's)")
	cmd.Flags().StringArrayVar(&sweepParams, "param", nil, "name=lo:hi:n or name=value, repeatable")
	cmd.Flags().StringVar(&sweepMetric, "metric", "max_overlap", "metric to minimize")
	return cmd
}

func sweep(cmd *cobra.Command, args []string) error {
	if len(sweepParams) == 0 {
		return fmt.Errorf("at least one --param is required")
	}

	names := make([]string, 0, len(sweepParams))
	ranges := make([][]float64, 0, len(sweepParams))
	for _, p := range sweepParams {
		name, raw, ok := strings.Cut(p, "=")
		if !ok {
			return fmt.Errorf("--param %q is not name=range", p)
		}
		values, err := optim.ParseRange(raw)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, values)
	}

	log, err := newLogger(false)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadScenario()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	best, trials, err := optim.NewGridSearch(names, ranges, log).Search(ctx, cfg, sweepMetric)
	if err != nil {
		return err
	}
	sort.SliceStable(trials, func(i, j int) bool { return trials[i].Value < trials[j].Value })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.ToUpper(strings.Join(names, "\t"))+"\t"+strings.ToUpper(sweepMetric))
	for _, t := range trials {
		for _, name := range names {
			fmt.Fprintf(w, "%.4f\t", t.Params[name])
		}
		fmt.Fprintf(w, "%.4f\n", t.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest %s = %.4f at %v\n", sweepMetric, best.Value, best.Params)
	return nil
}
