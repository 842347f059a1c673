package dias

import (
	"fmt"
	"time"

	"processo-manager/core/processo"
	"processo-manager/core/sheet"
	"processo-manager/core/table"

	"go.uber.org/zap"
)

// FilePrefix is the download name prefix of a parity report.
const FilePrefix = "100dias"

// Output is an encoded parity report.
type Output struct {
	Report      *processo.ParityReport
	FileName    string
	ContentType string
	Content     []byte
}

// Service builds parity reports.
type Service struct {
	cfg    processo.ReportConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new report service.
func NewService(cfg processo.ReportConfig, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, logger: logger, now: time.Now}
}

// Parity decodes an uploaded workbook and builds its report.
func (s *Service) Parity(name string, data []byte, filter processo.Filter, format sheet.Format) (*Output, error) {
	t, err := sheet.Decode(name, data)
	if err != nil {
		return nil, fmt.Errorf("workbook %q: %w", name, err)
	}
	return s.Run(t.Named(name), filter, format)
}

// Run builds the report of an already loaded table and encodes it.
func (s *Service) Run(t *table.Table, filter processo.Filter, format sheet.Format) (*Output, error) {
	report, err := processo.Report(t, s.cfg.Options(filter))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Parity report built",
		zap.String("filter", string(filter)),
		zap.Int("even", report.Even),
		zap.Int("odd", report.Odd),
		zap.Int("rows", report.Table.Len()),
	)

	if format == "" {
		format = sheet.XLSX
	}
	content, err := sheet.Bytes(report.Table, format, s.cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}

	return &Output{
		Report:      report,
		FileName:    sheet.FileName(FilePrefix, s.now(), format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}
