package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/blendlab/internal/blend"
	"github.com/san-kum/blendlab/internal/config"
	"github.com/san-kum/blendlab/internal/drive"
	"github.com/san-kum/blendlab/internal/loop"
	"github.com/san-kum/blendlab/internal/metrics"
	"github.com/san-kum/blendlab/internal/pilot"
	"github.com/san-kum/blendlab/internal/storage"
	"github.com/san-kum/blendlab/internal/tui"
	"github.com/san-kum/blendlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	dt         float64
	duration   float64
	saveRun    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "blendlab",
		Short: "weighted control blending lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".blendlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a blend scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "cycle period")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save run to the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "watch a blend scenario live",
		Args:  cobra.MaximumNArgs(1),
		RunE:  liveScenario,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario config file (yaml)")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig(args []string) (*config.Config, string, error) {
	if len(args) == 1 {
		cfg := config.GetPreset(args[0])
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		return cfg, args[0], nil
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, "custom", nil
	}
	return config.DefaultConfig(), "default", nil
}

// assemble registers one source per enabled pilot, bound to the given
// clock, and returns the observers the loop must notify.
func assemble(ctl *blend.Control[drive.Vector], cfg *config.Config, clock *loop.Clock) []loop.Observer[drive.Vector] {
	observers := make([]loop.Observer[drive.Vector], 0)

	if cfg.Stick.Enabled {
		stick := pilot.NewStick(cfg.Stick.Amplitude, cfg.Stick.Period, cfg.Stick.Weight)
		ctl.AddSource(pilot.Bind(stick, clock.Now))
	}
	if cfg.Hold.Enabled {
		target := drive.Vector{
			FieldX:   cfg.Hold.Target.FieldX,
			FieldY:   cfg.Hold.Target.FieldY,
			RobotX:   cfg.Hold.Target.RobotX,
			RobotY:   cfg.Hold.Target.RobotY,
			Rotation: cfg.Hold.Target.Rotation,
		}
		hold := pilot.NewHold(target, cfg.Hold.Authority, cfg.Hold.Rate)
		ctl.AddSource(pilot.Bind(hold, clock.Now))
	}
	if cfg.Damper.Enabled {
		damper := pilot.NewDamper(cfg.Damper.Gain)
		ctl.AddSource(pilot.Bind(damper, clock.Now))
		observers = append(observers, damper)
	}

	return observers
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, scenario, err := resolveConfig(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}

	ctl := blend.New[drive.Vector]()
	runner := loop.New(ctl)

	for _, obs := range assemble(ctl, cfg, runner.Clock()) {
		runner.AddObserver(obs)
	}
	runner.AddMetric(metrics.NewEffort())
	runner.AddMetric(metrics.NewSaturation(cfg.SaturationLimit))
	runner.AddMetric(metrics.NewSmoothness())

	result, err := runner.Run(context.Background(), loop.Config{
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		HoldLast: cfg.HoldLast,
	})
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render(fmt.Sprintf("scenario: %s", scenario)))
	fmt.Printf("cycles: %d (%d empty)\n\n", result.Cycles, result.EmptyCycles)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range []string{"effort", "saturation", "smoothness"} {
		fmt.Fprintf(w, "%s\t%.4f\n", name, result.Metrics[name])
	}
	w.Flush()
	fmt.Println()

	if len(result.Outputs) == 0 {
		return fmt.Errorf("no output to plot")
	}

	series := make([][]float64, len(drive.Labels()))
	for i := range series {
		series[i] = make([]float64, len(result.Outputs))
	}
	for i, out := range result.Outputs {
		for j, f := range out.Fields() {
			series[j][i] = f
		}
	}
	fmt.Print(viz.PlotChannels(series, drive.Labels()))

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(scenario, cfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("saved: %s\n", runID)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tCYCLES\tEMPTY\tTIMESTAMP")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			run.ID, run.Scenario, run.Cycles, run.EmptyCycles,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	series, times, err := st.LoadOutputs(args[0])
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(times))

	labels := drive.Labels()
	if len(series) != len(labels) {
		labels = nil
	}
	fmt.Print(viz.PlotChannels(series, labels))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func liveScenario(cmd *cobra.Command, args []string) error {
	cfg, scenario, err := resolveConfig(args)
	if err != nil {
		return err
	}

	ctl := blend.New[drive.Vector]()
	clock := loop.NewClock()
	observers := assemble(ctl, cfg, clock)

	return tui.Run(tui.NewLive(scenario, ctl, clock, observers, cfg.Dt, cfg.SaturationLimit))
}
