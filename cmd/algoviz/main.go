package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/registry"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
)

var (
	configFile string
	logLevel   string
	noColor    bool
	theme      string
	// Initial structure
	values   []int
	preset   string
	random   int
	seed     int64
	capacity int
	// Operands
	value  int
	index  int
	target int
	label  string
	from   string
	to     string
	// Output
	output   string
	lastOnly bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "algoviz",
		Short:             "step-by-step data structure and algorithm simulator",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", viz.ThemeClassic.Name, "color theme: "+strings.Join(viz.ThemeNames(), ", "))

	familiesCmd := &cobra.Command{
		Use:   "families",
		Short: "list structure families and their operations",
		Args:  cobra.NoArgs,
		RunE:  listFamilies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	runCmd := &cobra.Command{
		Use:   "run [family] [op]",
		Short: "generate an operation and print every step",
		Args:  cobra.ExactArgs(2),
		RunE:  runOperation,
	}
	runCmd.Flags().BoolVar(&lastOnly, "last", false, "print only the final step")

	playCmd := &cobra.Command{
		Use:   "play [family] [op]",
		Short: "replay an operation in the interactive terminal player",
		Args:  cobra.ExactArgs(2),
		RunE:  playOperation,
	}

	scriptCmd := &cobra.Command{
		Use:   "script [file.yaml]",
		Short: "run a list of operations, growing one history",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	exportCmd := &cobra.Command{
		Use:   "export [family] [op]",
		Short: "export the step sequence of an operation to JSON",
		Args:  cobra.ExactArgs(2),
		RunE:  exportOperation,
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	statsCmd := &cobra.Command{
		Use:   "stats [family] [op]",
		Short: "step metrics of an operation",
		Args:  cobra.ExactArgs(2),
		RunE:  showStats,
	}

	for _, c := range []*cobra.Command{runCmd, playCmd, scriptCmd, exportCmd, statsCmd} {
		c.Flags().IntSliceVar(&values, "values", nil, "initial values, e.g. 5,3,8")
		c.Flags().StringVar(&preset, "preset", "", "use a named initial structure")
		c.Flags().IntVar(&random, "random", 0, "start from N random values")
		c.Flags().Int64Var(&seed, "seed", 0, "random seed")
		c.Flags().IntVar(&capacity, "capacity", 0, "ring buffer capacity")
	}
	for _, c := range []*cobra.Command{runCmd, playCmd, exportCmd, statsCmd} {
		c.Flags().IntVar(&value, "value", 0, "value operand")
		c.Flags().IntVar(&index, "index", 0, "index operand")
		c.Flags().IntVar(&target, "target", 0, "search target")
		c.Flags().StringVar(&label, "label", "", "vertex label")
		c.Flags().StringVar(&from, "from", "", "edge or traversal start vertex")
		c.Flags().StringVar(&to, "to", "", "edge end vertex")
	}

	rootCmd.AddCommand(familiesCmd, presetsCmd, runCmd, playCmd, scriptCmd, exportCmd, statsCmd)
	return rootCmd
}

func listFamilies(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tAPPEND\tOPERATIONS")
	for _, name := range app.reg.ListFamilies() {
		f, err := app.reg.Family(name)
		if err != nil {
			return err
		}
		ops := make([]string, 0, len(f.Ops()))
		for _, op := range f.Ops() {
			if about := f.Describe(op); about != "" {
				op += "(" + about + ")"
			}
			ops = append(ops, op)
		}
		fmt.Fprintf(w, "%s\t%t\t%s\n", name, f.Incremental, strings.Join(ops, " "))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	families := app.reg.ListFamilies()
	if len(args) == 1 {
		families = args
	}
	found := false
	for _, family := range families {
		presets := config.ListPresets(family)
		if len(presets) == 0 {
			continue
		}
		found = true
		fmt.Fprintf(out, "presets for %s:\n", family)
		for _, p := range presets {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	if !found && len(args) == 1 {
		fmt.Fprintf(out, "no presets for family: %s\n", args[0])
	}
	return nil
}

func runOperation(cmd *cobra.Command, args []string) error {
	seq, _, err := generate(cmd, args[0], args[1])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if lastOnly {
		printStep(out, seq.Len()-1, seq.Len(), seq.Last())
	} else {
		for i, s := range seq {
			printStep(out, i, seq.Len(), s)
		}
	}
	if err := seq.Err(); err != nil {
		return err
	}
	return nil
}

func playOperation(cmd *cobra.Command, args []string) error {
	family, op := args[0], args[1]
	seq, _, err := generate(cmd, family, op)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		app.logger.Info("stdout is not a terminal, printing steps", "family", family, "op", op)
		for i, s := range seq {
			printStep(cmd.OutOrStdout(), i, seq.Len(), s)
		}
		return nil
	}

	ctrl := playback.New(
		playback.WithInterval(app.cfg.Interval(family)),
		playback.WithLogger(app.logger),
	)
	defer ctrl.Stop()
	if err := ctrl.Run(seq); err != nil {
		return err
	}
	return viz.Play(ctrl, family+" "+op)
}

func runScript(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	var reqs []registry.Request
	if err := yaml.Unmarshal(data, &reqs); err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}
	if len(reqs) == 0 {
		return fmt.Errorf("script %s has no operations", args[0])
	}

	ctrl := playback.New(
		playback.WithScheduler(playback.NewManualScheduler()),
		playback.WithLogger(app.logger),
	)
	out := cmd.OutOrStdout()
	states := make(map[string]step.Structure)
	current := ""

	for i, req := range reqs {
		f, err := app.reg.Family(req.Family)
		if err != nil {
			return fmt.Errorf("operation %d: %w", i+1, err)
		}
		state, ok := states[req.Family]
		if !ok {
			if state, err = initialState(cmd, req.Family); err != nil {
				return fmt.Errorf("operation %d: %w", i+1, err)
			}
		}
		seq, err := app.reg.Run(state, req)
		if err != nil {
			return fmt.Errorf("operation %d: %w", i+1, err)
		}
		if f.Incremental {
			states[req.Family] = seq.Last().State
		}

		if f.Incremental && req.Family == current {
			ctrl.Jump(ctrl.Len() - 1)
			err = ctrl.Append(seq)
		} else {
			err = ctrl.Run(seq)
		}
		if err != nil {
			return err
		}
		current = req.Family

		status := "ok"
		if seq.Diagnosed() {
			status = "rejected: " + seq.Last().Message
		}
		fmt.Fprintf(out, "%d. %s %s: %d steps, %s\n", i+1, req.Family, req.Op, seq.Len(), status)
	}

	ctrl.Jump(ctrl.Len() - 1)
	fmt.Fprintf(out, "\nhistory: %d steps\n\n", ctrl.Len())
	fmt.Fprintln(out, viz.Format(ctrl.CurrentStep()))
	return nil
}

func exportOperation(cmd *cobra.Command, args []string) error {
	seq, ops, err := generate(cmd, args[0], args[1])
	if err != nil {
		return err
	}
	data := export.NewExportData(args[0], args[1], ops, seq)
	if output == "" || output == "-" {
		return export.WriteJSON(cmd.OutOrStdout(), data)
	}
	if err := export.ExportJSON(output, data); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %d steps to %s (run %s)\n", seq.Len(), output, data.ID)
	return nil
}

func showStats(cmd *cobra.Command, args []string) error {
	family, op := args[0], args[1]
	seq, _, err := generate(cmd, family, op)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %s\n\n", family, op)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, v := range metrics.Collect(seq) {
		fmt.Fprintf(w, "%s\t%.0f\n", v.Name, v.Value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if seq.Len() > 1 {
		comparisons := metrics.Series(seq, metrics.NewComparisons())
		swaps := metrics.Series(seq, metrics.NewSwaps())
		graph := asciigraph.PlotMany([][]float64{comparisons, swaps},
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("cumulative comparisons (upper) and swaps"),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}

	counters, err := app.promReg.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	for _, mf := range counters {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			sort.Strings(labels)
			fmt.Fprintf(out, "%s{%s} %.0f\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
	return nil
}
