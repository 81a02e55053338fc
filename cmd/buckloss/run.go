package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ja7ad/buckloss/pkg/config"
	"github.com/ja7ad/buckloss/pkg/loss"
	"github.com/ja7ad/buckloss/pkg/report"
	"github.com/ja7ad/buckloss/pkg/sweep"
	"github.com/ja7ad/buckloss/pkg/types"
	"github.com/ja7ad/buckloss/pkg/util"
)

var errRange = errors.New("sweep end must be greater than start")

func isFallback(err error) bool { return errors.Is(err, config.ErrFallback) }

// checkSweep rejects empty or NaN ranges and too few samples before the
// engine sees them.
func checkSweep(start, end float64, samples int) error {
	if !(end > start) {
		return errRange
	}
	if samples < 2 {
		return fmt.Errorf("--samples %d: %w", samples, sweep.ErrSampleCount)
	}
	return nil
}

func runCiss(o opts, cfg *config.Config) error {
	if err := checkSweep(float64(cfg.CissStart), float64(cfg.CissEnd), cfg.Samples); err != nil {
		return fmt.Errorf("ciss %s..%s: %w", cfg.CissStart.Humanized(), cfg.CissEnd.Humanized(), err)
	}
	spec := sweep.CissSweep(cfg.CissStart.SI(), cfg.CissEnd.SI(), cfg.Samples,
		util.Scale(cfg.Freqs, 1e3))
	return runSweep(o, cfg, spec)
}

func runFreq(o opts, cfg *config.Config) error {
	if err := checkSweep(float64(cfg.FswStart), float64(cfg.FswEnd), cfg.Samples); err != nil {
		return fmt.Errorf("fsw %s..%s: %w", cfg.FswStart.Humanized(), cfg.FswEnd.Humanized(), err)
	}
	spec := sweep.FreqSweep(cfg.FswStart.SI(), cfg.FswEnd.SI(), cfg.Samples, cfg.Loads)
	return runSweep(o, cfg, spec)
}

func runSweep(o opts, cfg *config.Config, spec sweep.Spec) error {
	p, err := policy(o.gate, spec.Policy)
	if err != nil {
		return err
	}
	spec.Policy = p

	fixed := cfg.OperatingPoint()
	warnDuty(fixed)

	slog.Debug("sweep start",
		"axis", spec.Axis, "start", spec.Start, "end", spec.End,
		"samples", spec.Samples, "scenario", spec.Scenario, "scenarios", spec.Scenarios,
		"policy", spec.Policy)

	t0 := time.Now()
	res, err := sweep.Run(fixed, spec)
	if err != nil {
		return err
	}
	slog.Debug("sweep done", "elapsed", time.Since(t0))

	rep := report.Build(res, cfg.TjMax)
	if n := rep.NonFinite(); n > 0 {
		slog.Warn("non-finite results, check for zero Vin or Idriver", "points", n)
	}
	if hot := rep.Hot(); len(hot) > 0 {
		slog.Warn("junction temperature exceeds rating", "tj_max", cfg.TjMax, "scenarios", hot)
	}

	if err := printReport(os.Stdout, o, rep); err != nil {
		return err
	}
	return writeOutputs(o, rep)
}

func printReport(w io.Writer, o opts, rep report.Report) error {
	if !o.pretty {
		return report.WriteCSV(w, rep)
	}
	if err := report.WriteSummary(w, rep); err != nil {
		return err
	}
	if o.points {
		fmt.Fprintln(w)
		return report.WriteTable(w, rep)
	}
	return nil
}

func writeOutputs(o opts, rep report.Report) error {
	outs := []struct {
		path  string
		write func(io.Writer, report.Report) error
	}{
		{o.csvPath, report.WriteCSV},
		{o.jsonPath, report.WriteJSON},
		{o.htmlPath, report.WriteHTML},
		{o.xlsxPath, report.WriteXLSX},
		{o.pngPath, report.WritePNG},
	}
	for _, out := range outs {
		if out.path == "" {
			continue
		}
		if err := writeFile(out.path, func(w io.Writer) error { return out.write(w, rep) }); err != nil {
			return fmt.Errorf("write %s: %w", out.path, err)
		}
		slog.Info("report written", "path", out.path)
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func runTable(cmd *cobra.Command, o opts, cfg *config.Config) error {
	fixed := cfg.OperatingPoint()
	warnDuty(fixed)

	var (
		spec sweep.Spec
		at   float64
	)
	field, err := sweep.ParseField(o.axis)
	if err != nil {
		return fmt.Errorf("--axis: %w", err)
	}
	atSet := cmd.Flags().Changed("at")
	switch field {
	case sweep.Ciss:
		spec = sweep.CissSweep(0, 0, 0, util.Scale(cfg.Freqs, 1e3))
		at = cfg.Ciss.SI()
		if atSet {
			at = types.Picofarads(o.at).SI()
		}
	case sweep.Fsw:
		spec = sweep.FreqSweep(0, 0, 0, cfg.Loads)
		at = cfg.Fsw.SI()
		if atSet {
			at = types.Kilohertz(o.at).SI()
		}
	default:
		return fmt.Errorf("--axis %s: want ciss or fsw: %w", field, sweep.ErrUnknownField)
	}

	p, err := policy(o.gate, spec.Policy)
	if err != nil {
		return err
	}
	spec.Policy = p

	axis := report.UnitFor(spec.Axis)
	return report.WriteSnapshot(os.Stdout, report.Snapshot{
		Axis:     axis,
		At:       axis.Of(at),
		Scenario: report.UnitFor(spec.Scenario),
		Policy:   spec.Policy,
		TjMax:    cfg.TjMax,
		Rows:     spec.Snapshot(fixed, at),
	})
}

// policy resolves --gate against the default of the chosen sweep.
func policy(gate string, auto loss.Policy) (loss.Policy, error) {
	switch gate {
	case "", "auto":
		return auto, nil
	case "on":
		return loss.CondSwitchGate, nil
	case "off":
		return loss.CondSwitch, nil
	}
	return auto, fmt.Errorf("--gate %q: want auto, on or off", gate)
}

func warnDuty(op loss.OperatingPoint) {
	if d := op.Duty(); !(d >= 0 && d <= 1) {
		slog.Warn("duty cycle outside [0,1], results are not physical", "duty", util.FmtFloat(d))
	}
}
