// Command sheetlayout inspects a layout configuration: it prints the resolved
// name → column-index mapping for a sheet, or dumps a workbook's data rows
// keyed by field name.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/locvowork/sheetlayout/internal/bootstrap"
	"github.com/locvowork/sheetlayout/internal/logger"
	"github.com/locvowork/sheetlayout/pkg/sheetreader"
)

var outputPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetlayout",
		Short: "Resolve named spreadsheet columns from a layout configuration",
		Long: `sheetlayout maps semantic field names (e.g. "orderDate") to spreadsheet
column positions, driven by a YAML layout configuration and the APP_ENV
environment (debug or production sheet identifiers).`,
		SilenceUsage: true,
	}

	layoutCmd := &cobra.Command{
		Use:   "layout [logical sheet name]",
		Short: "Print header row count and field → column-index mapping",
		Args:  cobra.ExactArgs(1),
		RunE:  runLayout,
	}

	recordsCmd := &cobra.Command{
		Use:   "records [logical sheet name] [workbook.xlsx]",
		Short: "Dump a workbook's data rows keyed by field name",
		Args:  cobra.ExactArgs(2),
		RunE:  runRecords,
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.AddCommand(layoutCmd, recordsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initApp(ctx context.Context) (*bootstrap.App, error) {
	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "failed to initialize: %v", err)
		return nil, err
	}
	return app, nil
}

func runLayout(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := initApp(ctx)
	if err != nil {
		return err
	}

	layout := app.LayoutFor(args[0])
	dataMap, err := layout.DataMap()
	if err != nil {
		return err
	}

	return writeJSON(map[string]interface{}{
		"sheet_id":    layout.SheetID(),
		"header_rows": layout.HeaderRowCount(),
		"data_map":    dataMap,
		"data_config": layout.DataConfig(),
	})
}

func runRecords(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app, err := initApp(ctx)
	if err != nil {
		return err
	}

	reader, err := sheetreader.OpenFile(args[1])
	if err != nil {
		return err
	}
	defer reader.Close()

	layout := app.LayoutFor(args[0])
	records, err := reader.Records(layout)
	if err != nil {
		return err
	}
	logger.InfoLog(ctx, "read %d record(s) from %s", len(records), layout.SheetID())

	return writeJSON(records)
}

func writeJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}
