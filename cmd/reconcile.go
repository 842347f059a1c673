package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"processo-manager/core/config"
	"processo-manager/core/database"
	"processo-manager/core/logger"
	"processo-manager/core/sheet"
	"processo-manager/core/storage"
	"processo-manager/core/table"
	"processo-manager/feature/meta2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// Flags for the reconcile command
	oldPath       string
	newPath       string
	oldQuery      string
	newQuery      string
	oldTableName  string
	newTableName  string
	reconcileMode string
	outPath       string
	outFormat     string
	fromBucket    bool
	publish       bool
	malformed     string
	carryColumns  []string
)

// reconcileCmd compares the OLD (annotated) and NEW (filter) workbooks.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compare the annotated and the current Meta 2 workbooks",
	Long: `Reconcile the OLD (complete, annotated) workbook against the NEW (filter) workbook
using the PROCESSO column as key.

Reports how many processos were removed and added, labels every row as PAR or ÍMPAR
and writes the merged workbook.

Examples:
  # Union mode (default): retained OLD rows plus new processos
  reconcile --old antiga.xlsx --new nova.xlsx

  # Filter mode, CSV output
  reconcile --old antiga.xlsx --new nova.xlsx --mode filter --out comparada.csv

  # Read both workbooks from the storage bucket and publish the result
  reconcile --old entrada/antiga.xlsx --new entrada/nova.xlsx --from-bucket --publish

  # Load the NEW list from the database
  reconcile --old antiga.xlsx --new-query "SELECT PROCESSO, TAREFAS FROM meta2"

  # Load both lists from database tables
  reconcile --old-table acervo --new-table meta2`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&oldPath, "old", "", "OLD / complete workbook (file path or object name)")
	reconcileCmd.Flags().StringVar(&newPath, "new", "", "NEW / filter workbook (file path or object name)")
	reconcileCmd.Flags().StringVar(&oldQuery, "old-query", "", "SQL query loading the OLD table instead of --old")
	reconcileCmd.Flags().StringVar(&newQuery, "new-query", "", "SQL query loading the NEW table instead of --new")
	reconcileCmd.Flags().StringVar(&oldTableName, "old-table", "", "Database table loaded whole as the OLD table")
	reconcileCmd.Flags().StringVar(&newTableName, "new-table", "", "Database table loaded whole as the NEW table")
	reconcileCmd.Flags().StringVar(&reconcileMode, "mode", "", "filter, union or refresh (default from config)")
	reconcileCmd.Flags().StringVar(&outPath, "out", "", "Output file (default planilha_comparada_Meta2_<date>.<format>)")
	reconcileCmd.Flags().StringVar(&outFormat, "format", "", "xlsx or csv (default from --out, else xlsx)")
	reconcileCmd.Flags().BoolVar(&fromBucket, "from-bucket", false, "Read --old and --new from the storage bucket")
	reconcileCmd.Flags().BoolVar(&publish, "publish", false, "Upload the result to the storage bucket")
	reconcileCmd.Flags().StringVar(&malformed, "malformed", "", "abort or tag (default from config)")
	reconcileCmd.Flags().StringSliceVar(&carryColumns, "carry", nil, "Annotation columns carried from OLD (default: columns only in OLD)")

	RootCmd.AddCommand(reconcileCmd)
}

// source describes where one side of the comparison comes from.
type source struct {
	role  string
	path  string
	query string
	table string
}

func (s source) fromDatabase() bool {
	return s.query != "" || s.table != ""
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	old := source{role: "old", path: oldPath, query: oldQuery, table: oldTableName}
	current := source{role: "new", path: newPath, query: newQuery, table: newTableName}
	for _, s := range []source{old, current} {
		if s.path == "" && !s.fromDatabase() {
			return fmt.Errorf("missing --%s, --%s-query or --%s-table", s.role, s.role, s.role)
		}
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if malformed != "" {
		cfg.Reconcile.MalformedKeys = malformed
	}
	if len(carryColumns) > 0 {
		cfg.Reconcile.CarryColumns = carryColumns
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	format, err := resolveFormat(outFormat, outPath)
	if err != nil {
		return err
	}

	var client storage.Client
	if fromBucket || publish {
		if client, err = storage.NewClient(cfg.Storage); err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	var db *gorm.DB
	if old.fromDatabase() || current.fromDatabase() {
		if db, err = database.Connect(cfg.Database); err != nil {
			return err
		}
		l.Info("Connected to database", zap.String("driver", cfg.Database.Driver), zap.String("name", cfg.Database.Name))
	}

	loader := sourceLoader{
		db:         db,
		client:     client,
		bucket:     cfg.Storage.Bucket,
		fromBucket: fromBucket,
		keyColumn:  cfg.Reconcile.KeyColumn,
	}
	oldTable, err := loader.load(ctx, old)
	if err != nil {
		return err
	}
	newTable, err := loader.load(ctx, current)
	if err != nil {
		return err
	}

	svc := meta2.NewService(client, cfg.Storage, cfg.Reconcile, l)
	out, err := svc.Run(ctx, oldTable, newTable, meta2.Params{
		Mode:    reconcileMode,
		Format:  format,
		Publish: publish,
	})
	if err != nil {
		return fmt.Errorf("failed to reconcile: %w", err)
	}

	target := outPath
	if target == "" {
		target = out.FileName
	}
	if err := os.WriteFile(target, out.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	s := out.Result.Summary
	l.Info("Reconciliation report",
		zap.Int("total_old", s.TotalOld),
		zap.Int("total_new", s.TotalNew),
		zap.Int("removed_count", s.Removed),
		zap.Int("added_count", s.Added),
		zap.String("output", target),
	)
	printKeys(l, "Removed processos", out.Result.RemovedKeys)
	printKeys(l, "Added processos", out.Result.AddedKeys)
	if out.PublishedAs != "" {
		l.Info("Published", zap.String("object", out.PublishedAs))
	}
	return nil
}

// sourceLoader materializes a source from a file, the storage bucket or the database.
type sourceLoader struct {
	db         *gorm.DB
	client     storage.Client
	bucket     string
	fromBucket bool
	keyColumn  string
}

func (sl sourceLoader) load(ctx context.Context, s source) (*table.Table, error) {
	if s.fromDatabase() && sl.db == nil {
		return nil, fmt.Errorf("%s database source given without a database connection", s.role)
	}
	if s.query != "" {
		return database.LoadTable(ctx, sl.db, s.role, s.query)
	}
	if s.table != "" {
		t, err := database.LoadTableFrom(ctx, sl.db, s.table, sl.keyColumn)
		if err != nil {
			return nil, err
		}
		return t.Named(s.role), nil
	}

	if sl.fromBucket {
		data, err := storage.Fetch(ctx, sl.client, sl.bucket, s.path)
		if err != nil {
			return nil, err
		}
		t, err := sheet.Decode(s.path, data)
		if err != nil {
			return nil, fmt.Errorf("%s workbook %s: %w", s.role, s.path, err)
		}
		return t.Named(s.role), nil
	}

	t, err := sheet.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	return t.Named(s.role), nil
}

// resolveFormat picks the output format from the flag, then the output extension.
func resolveFormat(flag, out string) (sheet.Format, error) {
	if flag != "" {
		return sheet.ParseFormat(flag)
	}
	if filepath.Ext(out) != "" {
		return sheet.FormatFromName(out)
	}
	return sheet.XLSX, nil
}

// printKeys logs a sample of keys (max 10).
func printKeys(l *zap.Logger, msg string, keys []string) {
	if len(keys) == 0 {
		return
	}
	maxShow := min(len(keys), 10)
	l.Info(msg, zap.Int("count", len(keys)), zap.Strings("sample", keys[:maxShow]))
}
