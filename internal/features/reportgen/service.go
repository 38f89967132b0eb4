package reportgen

import (
	"context"
	"fmt"
	"time"

	"bbt-connect/internal/config"
	"bbt-connect/internal/features/report"

	"go.uber.org/zap"
)

const fileNamePrefix = "BBT_Book_Distribution_Report"

type GenerationService interface {
	Statistics(ctx context.Context) (*ReportStatistics, error)
	Generate(ctx context.Context, format Format, mode Mode) (*Artifact, error)
	GenerateAndDeliver(ctx context.Context, format Format, mode Mode) (*Delivery, error)
}

type GenerationServiceImpl struct {
	ReportRepo report.ReportRepository
	Document   *DocumentRenderer
	Workbook   *WorkbookRenderer
	Deliverer  Deliverer
	Logger     *zap.Logger
}

func NewGenerationService(reportRepo report.ReportRepository, document *DocumentRenderer, workbook *WorkbookRenderer, deliverer Deliverer, logger *zap.Logger) GenerationService {
	return &GenerationServiceImpl{
		ReportRepo: reportRepo,
		Document:   document,
		Workbook:   workbook,
		Deliverer:  deliverer,
		Logger:     logger,
	}
}

// NewDeliverer selects the delivery variant for this host from config
func NewDeliverer(cfg *config.Config, logger *zap.Logger) Deliverer {
	if cfg.DeliveryMode == "share" {
		return NewShareDeliverer(cfg.ExportDir, cfg.ShareAvailable, logger)
	}
	return NewDownloadDeliverer(cfg.ExportDir, cfg.ExportURL, logger)
}

func (s *GenerationServiceImpl) Statistics(ctx context.Context) (*ReportStatistics, error) {
	reports, err := s.ReportRepo.List(ctx)
	if err != nil {
		return nil, &AggregationError{Err: err}
	}
	stats := ComputeStatistics(reports)
	return &stats, nil
}

// Generate runs the pipeline: one awaited fetch, an empty-input pre-check,
// then synchronous aggregation and rendering.
func (s *GenerationServiceImpl) Generate(ctx context.Context, format Format, mode Mode) (*Artifact, error) {
	reports, err := s.ReportRepo.List(ctx)
	if err != nil {
		return nil, &AggregationError{Err: err}
	}
	if len(reports) == 0 {
		return nil, ErrNoData
	}

	stats := ComputeStatistics(reports)

	var data []byte
	var contentType string
	switch format {
	case FormatPDF:
		data, err = s.Document.Render(reports, stats, mode)
		contentType = "application/pdf"
	case FormatExcel:
		data, err = s.Workbook.Render(reports, stats)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	artifact := &Artifact{
		Bytes:       data,
		FileName:    fmt.Sprintf("%s_%s.%s", fileNamePrefix, time.Now().Format("2006-01-02"), format),
		ContentType: contentType,
	}

	s.Logger.Info("report generated",
		zap.String("format", string(format)),
		zap.String("mode", string(mode)),
		zap.Int("reports", len(reports)),
		zap.Int("bytes", len(artifact.Bytes)),
		zap.String("tableStrategy", s.Document.Strategy()))

	return artifact, nil
}

func (s *GenerationServiceImpl) GenerateAndDeliver(ctx context.Context, format Format, mode Mode) (*Delivery, error) {
	artifact, err := s.Generate(ctx, format, mode)
	if err != nil {
		return nil, err
	}
	return s.Deliverer.Deliver(ctx, artifact)
}
