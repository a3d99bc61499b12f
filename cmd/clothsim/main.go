package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/clothsim/internal/analysis"
	"github.com/san-kum/clothsim/internal/cloth"
	"github.com/san-kum/clothsim/internal/config"
	"github.com/san-kum/clothsim/internal/export"
	"github.com/san-kum/clothsim/internal/metrics"
	"github.com/san-kum/clothsim/internal/script"
	"github.com/san-kum/clothsim/internal/sim"
	"github.com/san-kum/clothsim/internal/storage"
	"github.com/san-kum/clothsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	runName    string
	scriptFile string
	snapshot   bool

	duration   float64
	ticks      int
	resolution int
	sheetSize  float64
	dropHeight float64
	stiffness  float64
	gsm        float64
	friction   float64
	ballGrip   float64
	radius     float64

	sweepFrom   float64
	sweepTo     float64
	sweepPoints int

	benchTicks int

	exportFormat string
	exportOut    string
	exportSeries string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "clothsim",
		Short: "cloth drape simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive viewer when no command given
			return viz.Run(config.DefaultConfig())
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".clothsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless drape and store the result",
		RunE:  runDrop,
	}
	addConfigFlags(runCmd)
	runCmd.Flags().StringVar(&runName, "name", "drop", "run name")
	runCmd.Flags().StringVar(&scriptFile, "script", "", "gesture script (yaml)")
	runCmd.Flags().BoolVar(&snapshot, "snapshot", false, "print a braille render of the final frame")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive viewer with mouse dragging",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg)
		},
	}
	addConfigFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored per-tick series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "drape report and render of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "json, csv, svg or obj")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output path (default stdout for json and csv, <run_id>.<ext> otherwise)")
	exportCmd.Flags().StringVar(&exportSeries, "series", "", "plot this series instead of the final frame (svg)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "drape the same scene across a stiffness range",
		RunE:  sweepStiffness,
	}
	addConfigFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.1, "lowest stiffness")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1.0, "highest stiffness")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 5, "number of runs")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time the solver across resolutions",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchTicks, "ticks", 300, "ticks per measurement")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list fabric presets",
		RunE:  listPresets,
	}

	checkCmd := &cobra.Command{
		Use:   "check [script.yaml]",
		Short: "validate a gesture script and print its timeline",
		Args:  cobra.ExactArgs(1),
		RunE:  checkScript,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, analyzeCmd, exportCmd, sweepCmd, benchCmd, presetsCmd, checkCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "fabric preset")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration in seconds")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "tick count, overrides --time")
	cmd.Flags().IntVar(&resolution, "resolution", config.DefaultResolution, "segments per sheet edge")
	cmd.Flags().Float64Var(&sheetSize, "size", config.DefaultClothSize, "sheet edge length")
	cmd.Flags().Float64Var(&dropHeight, "drop", config.DefaultDropHeight, "drop height")
	cmd.Flags().Float64Var(&stiffness, "stiffness", config.DefaultStiffness, "sheet stiffness, 0..1")
	cmd.Flags().Float64Var(&gsm, "gsm", 0, "fabric weight, overrides --stiffness")
	cmd.Flags().Float64Var(&friction, "friction", config.DefaultClothFriction, "sheet friction")
	cmd.Flags().Float64Var(&ballGrip, "ball-grip", config.DefaultSphereFriction, "sphere friction")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultSphereRadius, "sphere radius")
}

// buildConfig layers preset, config file and flags, later sources
// winning. Flags beat the file only when set on the command line.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("time") {
		cfg.Run.Duration = duration
	}
	if cmd.Flags().Changed("ticks") {
		cfg.Run.Ticks = ticks
	}
	if cmd.Flags().Changed("resolution") {
		cfg.Cloth.Resolution = resolution
	}
	if cmd.Flags().Changed("size") {
		cfg.Cloth.Size = sheetSize
	}
	if cmd.Flags().Changed("drop") {
		cfg.Cloth.DropHeight = dropHeight
	}
	if cmd.Flags().Changed("stiffness") {
		cfg.Cloth.Stiffness = stiffness
		cfg.Cloth.GSM = 0
	}
	if cmd.Flags().Changed("gsm") {
		cfg.Cloth.GSM = gsm
	}
	if cmd.Flags().Changed("friction") {
		cfg.Cloth.Friction = friction
	}
	if cmd.Flags().Changed("ball-grip") {
		cfg.Sphere.Friction = ballGrip
	}
	if cmd.Flags().Changed("radius") {
		cfg.Sphere.Radius = radius
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDrop(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	session, err := sim.NewSession(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Standard() {
		session.AddMetric(m)
	}

	if scriptFile != "" {
		return runScripted(session, cfg)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running drape simulation (%d ticks)...\n", cfg.TickCount())
	start := time.Now()

	result, err := session.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}

	runID, err := st.Save(runName, cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("ticks: %d\n", result.Ticks)
	fmt.Println("\nmetrics:")
	printMetrics(result.Metrics)

	if final := result.Final(); final != nil {
		_, sphere, _ := cfg.Scene()
		fmt.Println()
		fmt.Print(analysis.Drape(final, sphere, metrics.DefaultContactBand))
		if snapshot {
			grid, sphere, floor := cfg.Scene()
			fmt.Println()
			fmt.Print(viz.Still(final, grid, sphere, floor, 60, 24))
		}
	}

	return nil
}

// runScripted plays a gesture timeline against the session. Scripted
// runs are reproducible from their script, so they are not stored.
func runScripted(session *sim.Session, cfg *config.Config) error {
	sc, err := script.Load(scriptFile)
	if err != nil {
		return err
	}

	fmt.Printf("playing %s (%d events, %d ticks)...\n", sc.Name, len(sc.Events), cfg.TickCount())
	start := time.Now()
	if err := script.Play(context.Background(), session, sc); err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", time.Since(start))

	solver := session.Solver()
	fmt.Println()
	fmt.Print(analysis.Drape(solver.Particles.Pos, solver.Sphere, metrics.DefaultContactBand))
	if snapshot {
		fmt.Println()
		fmt.Print(viz.Still(solver.Particles.Pos, solver.Grid, solver.Sphere, solver.Floor, 60, 24))
	}
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
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
	fmt.Fprintln(w, "ID\tNAME\tTIME\tTICKS\tPARTICLES\tSTIFFNESS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2f\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Particles,
			run.Config.EffectiveStiffness(),
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	series, times, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("samples: %d covering %.2fs\n\n", len(times), times[len(times)-1])

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		graph := asciigraph.Plot(series[name],
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name+" vs time"),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run has no frames")
	}

	final := frames[len(frames)-1]
	grid, sphere, floor := meta.Config.Scene()

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("name: %s\n", meta.Name)
	fmt.Printf("ticks: %d\n", meta.Ticks)
	fmt.Printf("particles: %d\n\n", meta.Particles)
	fmt.Print(analysis.Drape(final, sphere, metrics.DefaultContactBand))
	fmt.Println()
	fmt.Print(viz.Still(final, grid, sphere, floor, 60, 24))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, times, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("run has no frames")
	}

	grid, sphere, floor := meta.Config.Scene()
	final := frames[len(frames)-1]

	switch exportFormat {
	case "json":
		series, _, err := st.LoadSeries(runID)
		if err != nil {
			return err
		}
		result := &sim.Result{
			Times:   times,
			Frames:  frames,
			Series:  series,
			Metrics: meta.Metrics,
			Ticks:   meta.Ticks,
		}
		out := exportOut
		if out == "" {
			out = "-"
		}
		return export.WriteJSON(out, meta.Name, &meta.Config, result)

	case "csv":
		dst := os.Stdout
		if exportOut != "" && exportOut != "-" {
			f, err := os.Create(exportOut)
			if err != nil {
				return err
			}
			defer f.Close()
			dst = f
		}
		w := csv.NewWriter(dst)
		defer w.Flush()

		header := []string{"time"}
		for i := range frames[0] {
			header = append(header, fmt.Sprintf("px%d", i), fmt.Sprintf("py%d", i), fmt.Sprintf("pz%d", i))
		}
		if err := w.Write(header); err != nil {
			return err
		}
		for i := range frames {
			row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
			for _, p := range frames[i] {
				row = append(row,
					strconv.FormatFloat(p.X, 'f', 6, 64),
					strconv.FormatFloat(p.Y, 'f', 6, 64),
					strconv.FormatFloat(p.Z, 'f', 6, 64),
				)
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil

	case "svg":
		var doc string
		if exportSeries != "" {
			series, seriesTimes, err := st.LoadSeries(runID)
			if err != nil {
				return err
			}
			values, ok := series[exportSeries]
			if !ok {
				return fmt.Errorf("no series %q in run %s", exportSeries, runID)
			}
			doc = export.SeriesSVG(seriesTimes, values, 800, 300, "#00ff00")
		} else {
			doc = export.WireframeSVG(final, grid, sphere, floor, 800, 600, 0.6)
		}
		if doc == "" {
			return fmt.Errorf("nothing to export")
		}
		out := exportOut
		if out == "" {
			out = runID + ".svg"
		}
		if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out)
		return nil

	case "obj":
		out := exportOut
		if out == "" {
			out = runID + ".obj"
		}
		if err := export.WriteOBJ(out, final, grid); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", out)
		return nil

	default:
		return fmt.Errorf("unknown format: %s", exportFormat)
	}
}

func sweepStiffness(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if sweepPoints < 1 {
		return fmt.Errorf("need at least one sweep point")
	}

	fmt.Printf("sweeping stiffness %.2f..%.2f over %d runs...\n\n", sweepFrom, sweepTo, sweepPoints)
	start := time.Now()
	points := sim.Sweep(context.Background(), cfg, sim.SweepRange(sweepFrom, sweepTo, sweepPoints))
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STIFFNESS\tGSM\tLOW\tSPREAD\tSILHOUETTE\tCONTACTS")
	silhouettes := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Err != nil {
			fmt.Fprintf(w, "%.2f\t%.0f\terror: %v\n", p.Stiffness, p.GSM, p.Err)
			continue
		}
		fmt.Fprintf(w, "%.2f\t%.0f\t%.3f\t%.3f\t%.3f\t%d\n",
			p.Stiffness, p.GSM, p.Drape.MinHeight, p.Drape.Spread, p.Drape.Silhouette, p.Drape.Contacts)
		silhouettes = append(silhouettes, p.Drape.Silhouette)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(silhouettes) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(silhouettes,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("silhouette vs stiffness"),
		))
	}

	fmt.Printf("\ncompleted in %v\n", elapsed)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchTicks < 1 {
		return fmt.Errorf("need at least one tick per measurement")
	}

	resolutions := []int{10, 20, 30, 45}
	stiffnesses := []float64{0.3, 0.9}

	fmt.Printf("benchmarking solver (%d ticks per cell)\n\n", benchTicks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RESOLUTION\tPARTICLES\tSTIFFNESS\tITERATIONS\tTICKS\tTIME\tTICKS/SEC")

	for _, res := range resolutions {
		for _, k := range stiffnesses {
			cfg := config.DefaultConfig()
			cfg.Cloth.Resolution = res
			cfg.Cloth.Stiffness = k
			cfg.Cloth.GSM = 0
			cfg.Run.Ticks = benchTicks

			session, err := sim.NewSession(cfg)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := session.Run(context.Background())
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			ticksPerSec := float64(result.Ticks) / elapsed.Seconds()

			fmt.Fprintf(w, "%d\t%d\t%.1f\t%d\t%d\t%v\t%.0f\n",
				res,
				session.Solver().Particles.Count(),
				k,
				cloth.IterationsFor(res, k),
				result.Ticks,
				elapsed,
				ticksPerSec,
			)
		}
	}

	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRESOLUTION\tSIZE\tSTIFFNESS\tGSM\tFRICTION")

	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.2f\t%.0f\t%.2f\n",
			name,
			cfg.Cloth.Resolution,
			cfg.Cloth.Size,
			cfg.EffectiveStiffness(),
			config.GSMFromStiffness(cfg.EffectiveStiffness()),
			cfg.Cloth.Friction,
		)
	}

	return w.Flush()
}

func checkScript(cmd *cobra.Command, args []string) error {
	sc, err := script.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("script: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("description: %s\n", sc.Description)
	}
	fmt.Printf("events: %d\n\n", len(sc.Events))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AT\tACTION\tDETAIL")
	for _, ev := range sc.Events {
		detail := ""
		switch {
		case ev.Hand != "":
			detail = fmt.Sprintf("%s hand (%.2f, %.2f, %.2f)", ev.Hand, ev.Pos[0], ev.Pos[1], ev.Pos[2])
		case len(ev.Set) > 0:
			keys := make([]string, 0, len(ev.Set))
			for k := range ev.Set {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make([]string, 0, len(keys))
			for _, k := range keys {
				parts = append(parts, fmt.Sprintf("%s=%g", k, ev.Set[k]))
			}
			detail = strings.Join(parts, " ")
		case ev.Action == "grab" || ev.Action == "drag":
			detail = fmt.Sprintf("(%.2f, %.2f, %.2f)", ev.Pos[0], ev.Pos[1], ev.Pos[2])
			if ev.Over > 0 {
				detail += fmt.Sprintf(" over %.2fs", ev.Over)
			}
		}
		fmt.Fprintf(w, "%.2f\t%s\t%s\n", ev.At, ev.Action, detail)
	}

	return w.Flush()
}
