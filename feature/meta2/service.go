package meta2

import (
	"context"
	"errors"
	"fmt"
	"time"

	"processo-manager/core/reconcile"
	"processo-manager/core/sheet"
	"processo-manager/core/storage"
	"processo-manager/core/table"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FilePrefix is the download name prefix of a comparison.
const FilePrefix = "planilha_comparada_Meta2"

// ErrStorageDisabled is returned when publishing is requested without a storage client.
var ErrStorageDisabled = errors.New("storage is not configured")

// Workbook is a spreadsheet file received from the caller.
type Workbook struct {
	Name string
	Data []byte
}

// Params tunes a single comparison on top of the configured defaults.
type Params struct {
	// Mode overrides the configured mode when set.
	Mode string
	// Format of the produced file. Defaults to XLSX.
	Format sheet.Format
	// Publish uploads the produced file to the storage bucket.
	Publish bool
	// SkipFile leaves Output.Content empty for callers that only need the result.
	// The file is still encoded when Publish is set.
	SkipFile bool
}

// Output is the result of a comparison.
type Output struct {
	Result      *reconcile.Result
	FileName    string
	ContentType string
	Content     []byte
	// PublishedAs is the object name in the bucket when Publish was requested.
	PublishedAs string
}

// Service handles Meta 2 comparisons.
type Service struct {
	client  storage.Client
	storage storage.Config
	cfg     reconcile.Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a new comparison service. client may be nil when storage is not used.
func NewService(client storage.Client, storageCfg storage.Config, cfg reconcile.Config, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		storage: storageCfg,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Compare parses both workbooks and runs the comparison.
func (s *Service) Compare(ctx context.Context, old, current Workbook, params Params) (*Output, error) {
	oldTable, err := parse(old, "old")
	if err != nil {
		return nil, err
	}
	newTable, err := parse(current, "new")
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, oldTable, newTable, params)
}

// Run reconciles two already loaded tables, encodes the merged table and publishes it
// when requested.
func (s *Service) Run(ctx context.Context, old, current *table.Table, params Params) (*Output, error) {
	cfg := s.cfg
	if params.Mode != "" {
		cfg.Mode = params.Mode
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	result, err := reconcile.Reconcile(old, current, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation finished",
		zap.String("mode", string(opts.Mode)),
		zap.Int("total_old", result.Summary.TotalOld),
		zap.Int("total_new", result.Summary.TotalNew),
		zap.Int("removed_count", result.Summary.Removed),
		zap.Int("added_count", result.Summary.Added),
		zap.Int("rows", result.Table.Len()),
	)
	if len(result.UnknownParity) > 0 {
		s.logger.Warn("Keys with unknown parity", zap.Strings("keys", result.UnknownParity))
	}

	format := params.Format
	if format == "" {
		format = sheet.XLSX
	}
	out := &Output{
		Result:      result,
		FileName:    sheet.FileName(FilePrefix, s.now(), format),
		ContentType: format.ContentType(),
	}
	if params.SkipFile && !params.Publish {
		return out, nil
	}

	content, err := sheet.Bytes(result.Table, format, cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	out.Content = content

	if params.Publish {
		if s.client == nil {
			return nil, ErrStorageDisabled
		}
		name := uuid.NewString()[:8] + "_" + out.FileName
		out.PublishedAs, err = storage.Publish(ctx, s.client, s.storage.Bucket, s.storage.Prefix, name, out.ContentType, content)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Result published", zap.String("bucket", s.storage.Bucket), zap.String("object", out.PublishedAs))
	}

	return out, nil
}

func parse(wb Workbook, role string) (*table.Table, error) {
	t, err := sheet.Decode(wb.Name, wb.Data)
	if err != nil {
		return nil, fmt.Errorf("%s workbook %q: %w", role, wb.Name, err)
	}
	return t.Named(role), nil
}
