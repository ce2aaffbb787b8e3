package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/crusade-api/internal/errors"
	"github.com/KirkDiggler/crusade-api/internal/export"
	"github.com/KirkDiggler/crusade-api/internal/orchestrators/roster"
)

var (
	exportFormat string
	exportLang   string
)

var exportCmd = &cobra.Command{
	Use:   "export LIST_ID",
	Short: "Print a stored list as a roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "text", "output format: text or json")
	exportCmd.Flags().StringVar(&exportLang, "lang", "en", "language for number formatting")
	exportCmd.Flags().StringVar(&storeKind, "store", "", "list store: redis or sqlite (overrides CRUSADE_STORE)")
	exportCmd.Flags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite file (overrides CRUSADE_SQLITE_PATH)")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "text" && exportFormat != "json" {
		return errors.InvalidArgumentf("unsupported format %q", exportFormat)
	}
	tag, err := language.Parse(exportLang)
	if err != nil {
		return errors.InvalidArgumentf("invalid lang %q", exportLang)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := buildApp(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	out, err := a.roster.ExportList(ctx, &roster.ExportListInput{ListID: args[0]})
	if err != nil {
		return err
	}

	if exportFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out.Roster)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), export.Text(out.Roster, tag))
	return err
}
