package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/registry"
	"github.com/san-kum/algoviz/internal/step"
	"github.com/san-kum/algoviz/internal/viz"
)

// session holds what every command shares once flags are parsed.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	reg     *registry.Registry
	promReg *prometheus.Registry
}

var app *session

func setup(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	logger, err := logging.Configure(logLevel)
	if err != nil {
		return err
	}

	if f := cmd.Flags().Lookup("seed"); f != nil && f.Changed {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if f := cmd.Flags().Lookup("capacity"); f != nil && f.Changed {
		cfg.RingCapacity = capacity
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if noColor {
		viz.DisableColor()
	}
	viz.SetTheme(theme)

	promReg := prometheus.NewRegistry()
	app = &session{
		cfg:    cfg,
		logger: logger,
		reg: registry.New(
			registry.WithLogger(logger),
			registry.WithRingCapacity(cfg.RingCapacity),
			registry.WithMetrics(metrics.NewRecorder(promReg)),
		),
		promReg: promReg,
	}
	return nil
}

// generate runs op on the initial structure chosen by the flags.
func generate(cmd *cobra.Command, family, op string) (step.Sequence, algo.Operands, error) {
	state, err := initialState(cmd, family)
	if err != nil {
		return nil, algo.Operands{}, err
	}
	req := registry.Request{Family: family, Op: op, Operands: operands(cmd)}
	seq, err := app.reg.Run(state, req)
	if err != nil {
		return nil, algo.Operands{}, err
	}
	ops, _ := registry.DecodeOperands(req.Operands)
	return seq, ops, nil
}

// initialState picks, in order: --preset, --values, --random, the family's
// default preset, and finally the family's empty structure (nil).
func initialState(cmd *cobra.Command, family string) (step.Structure, error) {
	var p *config.Preset
	switch {
	case preset != "":
		if p = config.GetPreset(family, preset); p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(family))
		}
	case cmd.Flags().Changed("values"):
		p = &config.Preset{Values: values}
	case random > 0:
		p = &config.Preset{Values: app.cfg.RandomValues(family, random)}
	case config.GetPreset(family, "default") != nil:
		p = config.GetPreset(family, "default")
	default:
		return nil, nil
	}
	st, err := p.Build(family, app.cfg.RingCapacity)
	if err != nil {
		return nil, err
	}
	app.logger.Debug("initial state", "family", family, "kind", st.Kind())
	return st, nil
}

// operands collects the operand flags that were set on the command line.
func operands(cmd *cobra.Command) map[string]any {
	out := make(map[string]any)
	ints := map[string]int{"value": value, "index": index, "target": target}
	for name, v := range ints {
		if cmd.Flags().Changed(name) {
			out[name] = v
		}
	}
	strs := map[string]string{"label": label, "from": from, "to": to}
	for name, v := range strs {
		if cmd.Flags().Changed(name) {
			out[name] = v
		}
	}
	return out
}

func printStep(w io.Writer, i, n int, s step.Step) {
	fmt.Fprintf(w, "step %d/%d\n%s\n\n", i+1, n, viz.Format(s))
}
