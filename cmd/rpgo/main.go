package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/rpgo-intake/internal/calculation"
	"github.com/rgehrsitz/rpgo-intake/internal/config"
	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/internal/output"
	"github.com/rgehrsitz/rpgo-intake/internal/store"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rpgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// scenarioSource is where a command reads and writes scenario inputs: a
// YAML file, or a client record in a store directory.
type scenarioSource struct {
	storeDir string
	clientID string
}

func (src *scenarioSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&src.storeDir, "store", "", "Directory of saved client scenarios")
	cmd.Flags().StringVar(&src.clientID, "client", "", "Client ID within --store")
}

func (src *scenarioSource) useStore() bool {
	return src.storeDir != "" || src.clientID != ""
}

func (src *scenarioSource) openStore() (*store.FileStore, error) {
	if src.storeDir == "" || src.clientID == "" {
		return nil, errors.New("--store and --client must be given together")
	}
	return store.NewFileStore(src.storeDir)
}

// load reads scenario inputs from the file in args or from the store.
func (src *scenarioSource) load(ctx context.Context, args []string) (domain.ScenarioInputs, error) {
	if src.useStore() {
		if len(args) > 0 {
			return nil, errors.New("give either a scenario file or --store/--client, not both")
		}
		fs, err := src.openStore()
		if err != nil {
			return nil, err
		}
		rec, err := fs.Get(ctx, src.clientID)
		if err != nil {
			return nil, err
		}
		return rec.Inputs, nil
	}
	if len(args) != 1 {
		return nil, errors.New("a scenario file is required")
	}
	return config.NewInputParser().LoadFromFile(args[0])
}

func newEngine(debugMode bool) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if debugMode {
		engine.Debug = true
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func newRootCmd() *cobra.Command {
	var debugMode bool

	rootCmd := &cobra.Command{
		Use:   "rpgo",
		Short: "FERS retirement intake and projection CLI",
		Long: "Imports retirement intake spreadsheets into scenario inputs and previews\n" +
			"FERS eligibility and annuity projections for federal employees.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable detailed debug output")

	rootCmd.AddCommand(
		importCmd(&debugMode),
		eligibilityCmd(&debugMode),
		projectCmd(&debugMode),
		previewCmd(&debugMode),
		validateCmd(),
		versionCmd(),
	)
	return rootCmd
}

func eligibilityCmd(debugMode *bool) *cobra.Command {
	var (
		src    scenarioSource
		format string
	)
	cmd := &cobra.Command{
		Use:   "eligibility [scenario-file]",
		Short: "Classify retirement eligibility at the goal retirement date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			res, err := newEngine(*debugMode).Eligibility(domain.ParseScenario(inputs))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "json":
				return writeJSON(w, res)
			case "console", "text":
				fmt.Fprintf(w, "Type:    %s\n", res.Type)
				fmt.Fprintf(w, "Status:  %s\n", res.Status)
				fmt.Fprintf(w, "Age:     %s\n", res.Age)
				fmt.Fprintf(w, "Service: %s\n", res.Service)
				fmt.Fprintf(w, "MRA:     %s\n", res.MRA)
				if res.Caveat != "" {
					fmt.Fprintf(w, "Note:    %s\n", res.Caveat)
				}
				return nil
			default:
				return fmt.Errorf("unsupported format %q (use console or json)", format)
			}
		},
	}
	src.addFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: console, json")
	return cmd
}

func projectCmd(debugMode *bool) *cobra.Command {
	var (
		src    scenarioSource
		format string
	)
	cmd := &cobra.Command{
		Use:   "project [scenario-file]",
		Short: "Build the twelve-column annuity projection table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			columns, err := newEngine(*debugMode).ProjectionTable(inputs)
			if err != nil {
				return err
			}

			if strings.EqualFold(format, "json") {
				return writeJSON(cmd.OutOrStdout(), columns)
			}
			formatter := output.GetFormatterByName(format)
			if formatter == nil || (formatter.Name() != "table" && formatter.Name() != "csv") {
				return fmt.Errorf("unsupported format %q (use table, csv or json)", format)
			}
			data, err := formatter.Format(&domain.Preview{Projection: columns})
			if err != nil {
				return fmt.Errorf("failed to format projection: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	src.addFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, csv, json")
	return cmd
}

func previewCmd(debugMode *bool) *cobra.Command {
	var (
		src    scenarioSource
		format string
	)
	cmd := &cobra.Command{
		Use:   "preview [scenario-file]",
		Short: "Show everything that can be computed from a partial scenario",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unsupported format %q (available: %s; aliases: %s)", format,
					strings.Join(output.AvailableFormatterNames(), ", "),
					strings.Join(output.AvailableFormatAliases(), ", "))
			}
			inputs, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			preview := newEngine(*debugMode).Preview(inputs)
			data, err := formatter.Format(&preview)
			if err != nil {
				return fmt.Errorf("failed to format preview: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	src.addFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: console, table, csv, json")
	return cmd
}

func validateCmd() *cobra.Command {
	var src scenarioSource
	cmd := &cobra.Command{
		Use:   "validate [scenario-file]",
		Short: "Check scenario values against the field catalogue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := src.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			name := src.clientID
			if len(args) == 1 {
				name = args[0]
			}

			w := cmd.OutOrStdout()
			warnings := config.NewInputParser().Validate(inputs)
			if len(warnings) == 0 {
				fmt.Fprintf(w, "Scenario %s is valid (%d of %d fields)\n", name, len(inputs.Keys()), len(domain.AllFields()))
				return nil
			}
			fmt.Fprintf(w, "Scenario %s has %d warning(s):\n", name, len(warnings))
			for _, warning := range warnings {
				fmt.Fprintf(w, "  - %s\n", warning)
			}
			return nil
		},
	}
	src.addFlags(cmd)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
