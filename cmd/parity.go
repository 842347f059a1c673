package cmd

import (
	"fmt"
	"os"

	"processo-manager/core/config"
	"processo-manager/core/logger"
	"processo-manager/core/processo"
	"processo-manager/core/sheet"
	"processo-manager/feature/dias"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the parity command
	parityFile   string
	parityFilter string
	parityOut    string
)

// parityCmd builds the "100 dias" parity report of a single workbook.
var parityCmd = &cobra.Command{
	Use:   "parity",
	Short: "Label processos as PAR or ÍMPAR (100 dias report)",
	Long: `Keep the working columns of a workbook, label every PROCESSO as PAR or ÍMPAR
and optionally keep only one parity.

Examples:
  parity --file lista.xlsx
  parity --file lista.xlsx --filter pares --out pares.xlsx`,
	RunE: runParity,
}

func init() {
	parityCmd.Flags().StringVar(&parityFile, "file", "", "Workbook to label")
	parityCmd.Flags().StringVar(&parityFilter, "filter", "todos", "todos, pares or impares")
	parityCmd.Flags().StringVar(&parityOut, "out", "", "Output file (default 100dias_<date>.xlsx)")
	_ = parityCmd.MarkFlagRequired("file")

	RootCmd.AddCommand(parityCmd)
}

func runParity(cmd *cobra.Command, args []string) error {
	filter, err := processo.ParseFilter(parityFilter)
	if err != nil {
		return err
	}
	format, err := resolveFormat("", parityOut)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	t, err := sheet.ReadFile(parityFile)
	if err != nil {
		return err
	}

	out, err := dias.NewService(cfg.Dias, l).Run(t, filter, format)
	if err != nil {
		return fmt.Errorf("failed to build parity report: %w", err)
	}

	target := parityOut
	if target == "" {
		target = out.FileName
	}
	if err := os.WriteFile(target, out.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	l.Info("Parity report written",
		zap.Int("even", out.Report.Even),
		zap.Int("odd", out.Report.Odd),
		zap.String("output", target),
	)
	return nil
}
