package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/export"
	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/physics"
	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/storage"
	"github.com/san-kum/ballsim/internal/world"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// headless runs cfg to completion, interruptible with ^C.
func headless(cfg *config.Config, log *zap.Logger) (*sim.Result, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := sim.New(physics.NewSpawner(rand.New(rand.NewSource(cfg.Seed)), cfg.Spawn), log)
	for _, m := range metrics.Standard(cfg.Physics) {
		s.AddMetric(m)
	}
	return s.Run(ctx, cfg.World(), cfg.SimConfig())
}

func runSimulation(cmd *cobra.Command, args []string) error {
	log, err := newLogger(false)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadScenario()
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := headless(cfg, log)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("scenario: %s (seed %d)\n", cfg.Name, cfg.Seed)
	fmt.Printf("ticks: %d in %v\n", result.StepsTaken, elapsed.Round(time.Millisecond))
	fmt.Printf("population: %d\n", result.Final.Len())
	fmt.Printf("fingerprint: %016x\n", result.Fingerprint)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	printMetrics(result.Metrics)

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}
	log.Info("run saved", zap.String("id", runID), zap.String("dir", dataDir))
	fmt.Printf("\nsaved: %s\n", runID)
	return nil
}

func printMetrics(values map[string]float64) {
	if len(values) == 0 {
		return
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%.4f\n", name, values[name])
	}
	w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSEED\tTICKS\tBALLS\tFINGERPRINT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Ticks,
			run.Population,
			run.Fingerprint,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(samples))

	energy := make([]float64, len(samples))
	population := make([]float64, len(samples))
	sleeping := make([]float64, len(samples))
	for i, s := range samples {
		energy[i] = s.Energy
		population[i] = float64(s.Population)
		sleeping[i] = float64(s.Sleeping)
	}

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"kinetic energy", energy},
		{"population", population},
		{"sleeping", sleeping},
	} {
		fmt.Println(asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(series.caption)))
		fmt.Println()
	}

	if svgOut != "" {
		svg := export.EnergyToSVG(samples, 800, 300, "#00ccff")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
}

func snapshot(cmd *cobra.Command, args []string) error {
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

	s := sim.New(physics.NewSpawner(rand.New(rand.NewSource(cfg.Seed)), cfg.Spawn), log)
	final, err := s.RunWithCallback(ctx, cfg.World(), cfg.SimConfig(), func(w world.World) bool {
		return !untilRest || !w.AtRest(cfg.Physics)
	})
	if err != nil {
		return err
	}

	svg := export.WorldToSVG(final, "#0a0a0a")
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d balls at tick %d)\n", outFile, final.Len(), final.Tick)
	return nil
}

func bench(cmd *cobra.Command, args []string) error {
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

	if numRuns < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", numRuns)
	}
	e := sim.NewEnsemble(cfg.Spawn, func() []sim.Metric { return metrics.Standard(cfg.Physics) }, numRuns, cfg.Seed, log)
	start := time.Now()
	results, err := e.Run(ctx, cfg.World(), cfg.SimConfig())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("benchmarking %s: %d runs x %d ticks\n\n", cfg.Name, numRuns, cfg.Ticks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tBALLS\tSLEEP\tMAX OVERLAP\tFINGERPRINT")
	steps := 0
	for i, r := range results {
		steps += r.StepsTaken
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%.3f\t%016x\n",
			cfg.Seed+int64(i),
			r.Final.Len(),
			r.Metrics["sleep_ratio"],
			r.Metrics["max_overlap"],
			r.Fingerprint,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d steps in %v (%.0f steps/sec)\n", steps, elapsed.Round(time.Millisecond), float64(steps)/elapsed.Seconds())
	return nil
}
