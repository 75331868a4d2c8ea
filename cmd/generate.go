package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/georgkoester/sbom2doc/internal/docbuilder"
	"github.com/georgkoester/sbom2doc/internal/license"
	"github.com/georgkoester/sbom2doc/internal/model"
	"github.com/georgkoester/sbom2doc/internal/output"
	"github.com/georgkoester/sbom2doc/internal/report"
	"github.com/georgkoester/sbom2doc/internal/sbom"
	"github.com/georgkoester/sbom2doc/internal/tui"
)

// options lists every recognized generate option with its default,
// validated once before any processing starts.
type options struct {
	InputFile              string
	OutputFile             string
	Format                 string
	IncludeLicense         bool
	AdditionalLicenseTexts string
	Debug                  bool
	Quiet                  bool
}

var generateCmd = &cobra.Command{
	Use:   "generate <sbom-file>",
	Short: "Render an SBOM as a document",
	Long:  "Parses the given SBOM file (CycloneDX or SPDX JSON) and renders a summary document.\nLicense references are normalized to SPDX identifiers where possible; with --include-license the canonical license texts are fetched from the SPDX license list.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringP("format", "f", "console", "Output format: console, markdown, json, pdf")
	generateCmd.Flags().StringP("output-file", "o", "", "Output filename (default: stdout for console format)")
	generateCmd.Flags().Bool("include-license", false, "Add license texts to the document")
	generateCmd.Flags().String("additional-license-texts", "", "JSON file with an object {LICENSE_ID: \"LICENSE TEXT\"} used as fallback license texts")
	_ = viper.BindPFlags(generateCmd.Flags())
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := options{
		InputFile:              args[0],
		OutputFile:             viper.GetString("output-file"),
		Format:                 viper.GetString("format"),
		IncludeLicense:         viper.GetBool("include-license"),
		AdditionalLicenseTexts: viper.GetString("additional-license-texts"),
		Debug:                  viper.GetBool("debug"),
		Quiet:                  viper.GetBool("quiet"),
	}
	if err := opts.validate(); err != nil {
		return err
	}

	log := newLogger(opts.Debug)

	// Configuration errors abort before any processing.
	overrides, err := loadAdditionalTexts(opts.AdditionalLicenseTexts)
	if err != nil {
		return err
	}

	var parsed *model.SBOM
	var summary *license.Summary
	diag := license.NewDiagnostics()
	aggregator := license.NewAggregator(log, diag)

	steps := []tui.Step{
		{
			Name: "Parsing SBOM",
			Run: func() error {
				var err error
				parsed, err = sbom.Load(opts.InputFile)
				return err
			},
		},
		{
			Name: "Reconciling licenses",
			Run: func() error {
				summary = aggregator.Aggregate(parsed.Packages, parsed.Files)
				return nil
			},
		},
	}

	if opts.IncludeLicense {
		steps = append(steps, tui.Step{
			Name: "Fetching license texts",
			Run: func() error {
				aggregator.EnrichTexts(summary, license.NewSPDXFetcher(), overrides)
				return nil
			},
		})
	}

	steps = append(steps, tui.Step{
		Name: "Rendering document",
		Run: func() error {
			if dir := filepath.Dir(opts.OutputFile); opts.OutputFile != "" && dir != "." {
				if err := output.EnsureDir(dir); err != nil {
					return fmt.Errorf("creating output directory: %w", err)
				}
			}
			builder, err := docbuilder.New(opts.Format)
			if err != nil {
				return err
			}
			return report.Emit(builder, parsed, summary, diag, report.Options{
				SourceFile:         opts.InputFile,
				IncludeLicenseText: opts.IncludeLicense,
			}, opts.OutputFile)
		},
	})

	if opts.Quiet || opts.Format == "console" || opts.Format == "" {
		if err := tui.RunSteps(steps); err != nil {
			return err
		}
	} else {
		m := tui.New(steps)
		finalModel, err := tea.NewProgram(m).Run()
		if err != nil {
			return fmt.Errorf("progress UI: %w", err)
		}
		if fm, ok := finalModel.(tui.Model); ok && fm.Err() != nil {
			return fm.Err()
		}
	}

	// Diagnostics come after publish; a failed CSV write never undoes the
	// rendered document.
	if opts.Debug && !diag.Empty() {
		written, err := diag.WriteReports(".", time.Now())
		for _, p := range written {
			log.Info().Str("file", p).Msg("wrote diagnostic report")
		}
		if err != nil {
			log.Error().Err(err).Msg("writing diagnostic reports")
		}
	}

	return nil
}

func (o *options) validate() error {
	if o.InputFile == "" {
		return fmt.Errorf("SBOM file must be specified")
	}
	switch o.Format {
	case "", "console", "markdown", "json", "pdf":
	default:
		return fmt.Errorf("unsupported output format %q (use console, markdown, json or pdf)", o.Format)
	}
	if o.Format != "console" && o.Format != "" && o.OutputFile == "" {
		return fmt.Errorf("output filename must be specified for %s format", o.Format)
	}
	return nil
}

// loadAdditionalTexts reads the fallback license-text table. The file must
// contain a single JSON object mapping license ids to texts; anything else
// is a fatal configuration error. Keys are upper-cased for lookup.
func loadAdditionalTexts(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("expected path to JSON file with object, got %q: %w", path, err)
	}
	var texts map[string]string
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("expected path to JSON file with object, got %q: %w", path, err)
	}
	upper := make(map[string]string, len(texts))
	for k, v := range texts {
		upper[strings.ToUpper(k)] = v
	}
	return upper, nil
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
