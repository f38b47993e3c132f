package main

import (
	"fmt"
	"os"

	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/gui"
	"github.com/san-kum/ballsim/internal/logging"
	"github.com/san-kum/ballsim/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir    string
	logLevel   string
	logFile    string
	configFile string
	preset     string
	seed       int64
	ticks      int
	save       bool
	svgOut     string
	outFile    string
	numRuns    int
	untilRest  bool
)

// main registers the commands and runs the terminal sandbox when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "ballsim",
		Short:         "bouncing ball sandbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ballsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (default stderr, discarded by tui and gui)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 keeps the scenario's)")

	scenarioFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		cmd.MarkFlagsMutuallyExclusive("config", "preset")
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}
	scenarioFlags(tuiCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a window",
		RunE:  runGUI,
	}
	scenarioFlags(guiCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario headless",
		RunE:  runSimulation,
	}
	scenarioFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", 0, "number of ticks (0 keeps the scenario's)")
	runCmd.Flags().BoolVar(&save, "save", true, "persist the run under --data")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the energy curve as SVG")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "run headless and draw the last world as SVG",
		RunE:  snapshot,
	}
	scenarioFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&ticks, "ticks", 0, "number of ticks (0 keeps the scenario's)")
	snapshotCmd.Flags().StringVar(&outFile, "out", "snapshot.svg", "output file")
	snapshotCmd.Flags().BoolVar(&untilRest, "until-rest", false, "stop early once every ball is asleep")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run a scenario under consecutive seeds in parallel",
		RunE:  bench,
	}
	scenarioFlags(benchCmd)
	benchCmd.Flags().IntVar(&ticks, "ticks", 0, "number of ticks (0 keeps the scenario's)")
	benchCmd.Flags().IntVar(&numRuns, "runs", 8, "number of seeds")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-8s ticks=%-5d taps=%-3d gravity=%g\n", name, cfg.Ticks, len(cfg.Taps), cfg.Physics.Gravity)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "write a scenario as YAML for editing",
		RunE:  writeConfig,
	}
	scenarioFlags(configCmd)
	configCmd.Flags().StringVar(&outFile, "out", "ballsim.yaml", "output file")

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, listCmd, plotCmd, exportJSONCmd, snapshotCmd, benchCmd, presetsCmd, configCmd, newSweepCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadScenario resolves --preset or --config, then the flag overrides.
func loadScenario() (*config.Config, error) {
	cfg, err := config.Resolve(preset, configFile)
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if ticks > 0 {
		cfg.Ticks = ticks
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger logs to --log-file, or to stderr unless the command owns the
// screen.
func newLogger(ownsScreen bool) (*zap.Logger, error) {
	if ownsScreen && logFile == "" {
		return logging.Nop(), nil
	}
	return logging.New(logLevel, logFile)
}

func runTUI(cmd *cobra.Command, args []string) error {
	log, err := newLogger(true)
	if err != nil {
		return err
	}
	defer log.Sync()

	if preset == "" && configFile == "" {
		return viz.RunInteractive(seed, log)
	}
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	return viz.RunLive(cfg, log)
}

func runGUI(cmd *cobra.Command, args []string) error {
	log, err := newLogger(true)
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	gui.Run(cfg, log)
	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	if err := config.Save(outFile, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
