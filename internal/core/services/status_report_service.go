package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smartdom/shift_management_app/internal/apperrors"
	"github.com/smartdom/shift_management_app/internal/core/domain"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/utils/workday"
)

// statusReportService snapshots the current turn state on demand, numbering
// each report sequentially per location and work date.
type statusReportService struct {
	BaseService
	reportRepo    portsrepo.StatusReportRepository
	closingReader portssvc.ClosingReaderSvc
	cutoverHour   int
	now           func() time.Time
}

// StatusReportServiceOption is a functional option for configuring the status report service
type StatusReportServiceOption func(*statusReportService)

// WithStatusReportClock overrides the wall clock, used by tests.
func WithStatusReportClock(now func() time.Time) StatusReportServiceOption {
	return func(s *statusReportService) {
		s.now = now
	}
}

// NewStatusReportService creates a new status report service with the provided options
func NewStatusReportService(
	reportRepo portsrepo.StatusReportRepository,
	closingReader portssvc.ClosingReaderSvc,
	cutoverHour int,
	options ...StatusReportServiceOption,
) portssvc.StatusReportSvcFacade {
	svc := &statusReportService{
		reportRepo:    reportRepo,
		closingReader: closingReader,
		cutoverHour:   cutoverHour,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure statusReportService implements the StatusReportSvcFacade interface
var _ portssvc.StatusReportSvcFacade = (*statusReportService)(nil)

// nextReportNumber builds the next sequential report number for the
// location and work date, in the form LOC<prefix>-YYYYMMDD-NNN.
func (s *statusReportService) nextReportNumber(ctx context.Context, locationID, workDate string) string {
	sequential := 1
	last, err := s.reportRepo.FindLastReportNumber(ctx, locationID, workDate)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find last report number, using fallback",
				slog.String("location_id", locationID),
				slog.String("work_date", workDate))
			return fmt.Sprintf("REP-%d", s.now().UnixMilli())
		}
	} else {
		// A fallback number ("REP-<millis>") carries no usable sequence.
		// Only a short numeric suffix on a regular number continues it.
		parts := strings.Split(last, "-")
		suffix := parts[len(parts)-1]
		if strings.HasPrefix(last, "LOC") && len(suffix) <= 4 {
			if n, convErr := strconv.Atoi(suffix); convErr == nil {
				sequential = n + 1
			}
		}
	}

	prefix := locationID
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	dateCompact := strings.ReplaceAll(workDate, "-", "")
	return fmt.Sprintf("LOC%s-%s-%03d", prefix, dateCompact, sequential)
}

func (s *statusReportService) GenerateStatusReport(ctx context.Context, locationID string, notes string, userID string) (*domain.StatusReport, error) {
	now := s.now()
	workDate := workday.WorkDate(now, s.cutoverHour)

	snapshot, _, err := s.closingReader.PreviewClosing(ctx, locationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build status report snapshot",
			slog.String("location_id", locationID))
		return nil, err
	}

	reportJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status report snapshot: %w", err)
	}

	report := domain.StatusReport{
		ReportID:     uuid.NewString(),
		LocationID:   locationID,
		ReportNumber: s.nextReportNumber(ctx, locationID, workDate),
		WorkDate:     workDate,
		ReportTime:   now.Format("15:04"),
		Notes:        notes,
		GeneratedBy:  userID,
		Report:       reportJSON,
		CreatedAt:    now,
	}

	if err := s.reportRepo.SaveStatusReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save status report",
			slog.String("location_id", locationID),
			slog.String("report_number", report.ReportNumber))
		return nil, fmt.Errorf("failed to save status report: %w", err)
	}

	s.LogInfo(ctx, "Status report generated",
		slog.String("report_id", report.ReportID),
		slog.String("report_number", report.ReportNumber),
		slog.String("location_id", locationID))

	return &report, nil
}

func (s *statusReportService) ListStatusReports(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.StatusReport, error) {
	reports, err := s.reportRepo.ListStatusReports(ctx, locationID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list status reports: %w", err)
	}
	if reports == nil {
		return []domain.StatusReport{}, nil
	}
	return reports, nil
}
