// Command fftdemo transforms a synthetic sine with the radix-2 engine,
// reconstructs it with the naive inverse DFT and cross-checks the engine
// against independent FFT implementations.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/RyanBlaney/sonido-fft/algorithms/fft"
	"github.com/RyanBlaney/sonido-fft/algorithms/signal"
	"github.com/RyanBlaney/sonido-fft/algorithms/spectral"
	"github.com/RyanBlaney/sonido-fft/config"
	"github.com/RyanBlaney/sonido-fft/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logging.SetGlobalLogger(logging.NewLogger(stdout, stderr, cfg.Level(), cfg.Colors))
	logging.Debug("Demo configured", logging.Fields{
		"order":     cfg.Order,
		"amplitude": cfg.Amplitude,
		"tolerance": cfg.Tolerance,
	})

	renderer := newRenderer(stdout, cfg.Colors)
	heading := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	failure := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	original := signal.Sine(cfg.Size(), cfg.Amplitude)
	input := signal.ToComplex(original)

	spectrum, err := fft.Forward(input, cfg.Order)
	if err != nil {
		logging.Error(err, "Forward transform failed")
		return 1
	}

	// NaiveInverse divides by N, undoing the engine's unnormalized forward pass.
	restored := fft.NaiveInverse(spectrum)

	fmt.Fprintln(stdout, heading.Render("Original signal"))
	fmt.Fprintln(stdout, signal.FormatReal(original, cfg.Precision))
	fmt.Fprintln(stdout, heading.Render("Reconstructed signal"))
	fmt.Fprintln(stdout, signal.FormatComplex(restored, cfg.Precision))

	result, err := spectral.NewCrossCheck().Compare(input, cfg.Order)
	if err != nil {
		logging.Error(err, "Cross-check failed")
		return 1
	}

	fields := logging.Fields{
		"size":       result.Size,
		"naive":      result.NaiveError,
		"godsp":      result.GoDSPError,
		"gonum":      result.GonumError,
		"round_trip": result.RoundTripError,
	}

	if !result.Passed(cfg.Tolerance) {
		logging.Warn("Cross-check exceeded tolerance", fields)
		fmt.Fprintln(stdout, failure.Render(
			fmt.Sprintf("max error %.3g exceeds tolerance %.3g", result.MaxError(), cfg.Tolerance)))
		return 1
	}

	logging.Info("Cross-check", fields)
	return 0
}

// newRenderer binds lipgloss styles to w. With colors off every style
// renders as plain text, even on a terminal.
func newRenderer(w io.Writer, colors bool) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	if !colors {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return renderer
}

func parseConfig(args []string, stderr io.Writer) (*config.DemoConfig, error) {
	fs := flag.NewFlagSet("fftdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	path := fs.String("config", "", "path to a JSON config file")
	order := fs.Int("order", -1, "transform order (length is 2^order)")
	amplitude := fs.Float64("amplitude", 0, "sine amplitude")
	precision := fs.Int("precision", -1, "decimals when printing")
	verbose := fs.Bool("v", false, "debug logging")
	noColor := fs.Bool("no-color", false, "disable colored output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.DefaultDemoConfig()
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Flags override the file only when set.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "order":
			cfg.Order = *order
		case "amplitude":
			cfg.Amplitude = *amplitude
		case "precision":
			cfg.Precision = *precision
		}
	})
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if *noColor {
		cfg.Colors = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
