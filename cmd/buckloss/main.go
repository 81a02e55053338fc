package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ja7ad/buckloss/pkg/config"
	"github.com/ja7ad/buckloss/pkg/util"
)

type opts struct {
	envFiles []string
	logLevel string
	gate     string

	// table command
	axis string
	at   float64

	// outputs
	pretty   bool
	points   bool
	csvPath  string
	jsonPath string
	htmlPath string
	xlsxPath string
	pngPath  string
}

func main() {
	var o opts
	def := config.Defaults()

	root := &cobra.Command{
		Use:   "buckloss",
		Short: "Buck converter switch loss and junction temperature sweeps",
		Long: `The buckloss tool estimates conduction, switching and gate-drive losses of
the high-side MOSFET in a step-down converter and the resulting junction
temperature. It sweeps input capacitance or switching frequency for a list of
comparison scenarios and reports the endpoint slope of each curve
(e.g. W/nF: extra watts per nanofarad of Ciss).

Every parameter can also be set through BUCKLOSS_* environment variables or a
.env file (see --env); flags win over the environment.

Examples:
  buckloss ciss --freqs "100, 200, 300" --png ciss.png
  buckloss freq --loads "5,10,15" --ciss 3300 --csv out/freq.csv
  buckloss table --axis fsw --at 250 --loads "5, 10"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(o.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&o.envFiles, "env", nil, "read BUCKLOSS_* variables from these .env files (default ./.env if present)")
	pf.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&o.gate, "gate", "auto", "include gate-drive loss in P_total: auto, on, off")

	pf.Float64("vin", def.Vin, "input voltage Vin (V)")
	pf.Float64("vout", def.Vout, "output voltage Vout (V)")
	pf.Float64("vdrive", def.Vdrive, "gate drive voltage Vdrive (V)")
	pf.Float64("idriver", def.Idriver, "gate driver current capability (A)")
	pf.Float64("iout", def.Iout, "load current Iout (A)")
	pf.Float64("rdson", float64(def.Rdson), "MOSFET Rds(on) (mΩ)")
	pf.Float64("ciss", float64(def.Ciss), "input capacitance Ciss when not swept (pF)")
	pf.Float64("fsw", float64(def.Fsw), "switching frequency when not swept (kHz)")
	pf.Float64("rth", def.RthJA, "thermal resistance junction-ambient Rth_ja (°C/W)")
	pf.Float64("tamb", def.Tamb, "ambient temperature (°C)")
	pf.Float64("tj-max", def.TjMax, "rated maximum junction temperature (°C)")
	pf.Int("samples", def.Samples, "grid points per sweep (>= 2)")

	pf.BoolVar(&o.pretty, "pretty", true, "print a summary table instead of CSV lines")
	pf.BoolVar(&o.points, "points", false, "also print every grid point")
	pf.StringVar(&o.csvPath, "csv", "", "write grid points to CSV file")
	pf.StringVar(&o.jsonPath, "json", "", "write report to JSON file")
	pf.StringVar(&o.htmlPath, "html", "", "write report to HTML file")
	pf.StringVar(&o.xlsxPath, "xlsx", "", "write report to Excel workbook")
	pf.StringVar(&o.pngPath, "png", "", "write loss/temperature chart to PNG file")

	ciss := &cobra.Command{
		Use:   "ciss",
		Short: "Sweep input capacitance for several switching frequencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, o)
			if err != nil {
				return err
			}
			return runCiss(o, cfg)
		},
	}
	ciss.Flags().Float64("ciss-start", float64(def.CissStart), "Ciss sweep start (pF)")
	ciss.Flags().Float64("ciss-end", float64(def.CissEnd), "Ciss sweep end (pF)")
	ciss.Flags().String("freqs", util.JoinFloats(def.Freqs), "comparison frequencies (kHz, comma separated)")

	freq := &cobra.Command{
		Use:   "freq",
		Short: "Sweep switching frequency for several load currents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, o)
			if err != nil {
				return err
			}
			return runFreq(o, cfg)
		},
	}
	freq.Flags().Float64("fsw-start", float64(def.FswStart), "frequency sweep start (kHz)")
	freq.Flags().Float64("fsw-end", float64(def.FswEnd), "frequency sweep end (kHz)")
	freq.Flags().String("loads", util.JoinFloats(def.Loads), "comparison load currents (A, comma separated)")

	table := &cobra.Command{
		Use:   "table",
		Short: "Tabulate the loss breakdown of every scenario at one point",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, o)
			if err != nil {
				return err
			}
			return runTable(cmd, o, cfg)
		},
	}
	table.Flags().StringVar(&o.axis, "axis", "ciss", "fixed axis: ciss (scenarios are --freqs) or fsw (scenarios are --loads)")
	table.Flags().Float64Var(&o.at, "at", 0, "axis value (pF or kHz); defaults to --ciss or --fsw")
	table.Flags().String("freqs", util.JoinFloats(def.Freqs), "comparison frequencies (kHz, comma separated)")
	table.Flags().String("loads", util.JoinFloats(def.Loads), "comparison load currents (A, comma separated)")

	root.AddCommand(ciss, freq, table)

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// loadConfig reads the environment and then applies every flag the user
// changed on the command line.
func loadConfig(cmd *cobra.Command, o opts) (*config.Config, error) {
	cfg, err := config.Load(o.envFiles...)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]bool, len(config.Keys))
	for _, k := range config.Keys {
		keys[k] = true
	}

	var ferr error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if ferr != nil || !keys[f.Name] {
			return
		}
		if err := cfg.Set(f.Name, f.Value.String()); err != nil {
			if isFallback(err) {
				slog.Warn("format error, using default list", "flag", f.Name, "value", f.Value.String(), "err", err)
				return
			}
			ferr = fmt.Errorf("--%s: %w", f.Name, err)
		}
	})
	return cfg, ferr
}

func setupLogger(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}
