package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/rgehrsitz/rpgo-intake/internal/config"
	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/internal/importer"
	"github.com/spf13/cobra"
)

func importCmd(debugMode *bool) *cobra.Command {
	var (
		src    scenarioSource
		into   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "import [workbook.xlsx]",
		Short: "Import an intake spreadsheet into scenario inputs",
		Long: "Reads the first sheet of an intake workbook and extracts every field it can\n" +
			"locate by label. The result is printed, merged into a scenario file with\n" +
			"--into, or merged into a saved client record with --store/--client.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if into != "" && src.useStore() {
				return fmt.Errorf("--into cannot be combined with --store/--client")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read workbook %s: %w", args[0], err)
			}

			im := importer.NewImporter()
			if *debugMode {
				im.SetLogger(simpleCLILogger{})
			}
			res, err := im.Import(bytes.NewReader(data))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			parser := config.NewInputParser()
			switch {
			case into != "":
				existing := domain.ScenarioInputs{}
				if fileExists(into) {
					if existing, err = parser.LoadFromFile(into); err != nil {
						return err
					}
				}
				merged := existing.Merge(res.Inputs)
				if err := parser.SaveToFile(into, merged); err != nil {
					return err
				}
				fmt.Fprintf(w, "Imported %d fields into %s\n", len(res.Inputs), into)
				return nil

			case src.useStore():
				fs, err := src.openStore()
				if err != nil {
					return err
				}
				rec, err := fs.Get(cmd.Context(), src.clientID)
				if err != nil {
					return err
				}
				if _, err := fs.Save(cmd.Context(), src.clientID, rec.Inputs.Merge(res.Inputs)); err != nil {
					return err
				}
				fmt.Fprintf(w, "Imported %d fields for client %s\n", len(res.Inputs), src.clientID)
				return nil
			}

			switch strings.ToLower(format) {
			case "json":
				return writeJSON(w, res)
			case "yaml", "yml":
				out, err := parser.Marshal(res.Inputs)
				if err != nil {
					return err
				}
				_, err = w.Write(out)
				return err
			default:
				return fmt.Errorf("unsupported format %q (use yaml or json)", format)
			}
		},
	}
	src.addFlags(cmd)
	cmd.Flags().StringVar(&into, "into", "", "Scenario file to merge the imported fields into")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format when printing: yaml, json")
	return cmd
}
