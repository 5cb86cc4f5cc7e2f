package services

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// StatusReportReaderSvc defines read operations for status reports
type StatusReportReaderSvc interface {
	// ListStatusReports retrieves status reports for a location, optionally
	// bounded by an inclusive work-date range.
	ListStatusReports(ctx context.Context, locationID string, fromDate, toDate *string) ([]domain.StatusReport, error)
}

// StatusReportWriterSvc defines write operations for status reports
type StatusReportWriterSvc interface {
	// GenerateStatusReport snapshots the current turn state into a numbered,
	// immutable report.
	GenerateStatusReport(ctx context.Context, locationID string, notes string, userID string) (*domain.StatusReport, error)
}

// StatusReportSvcFacade combines all status-report service interfaces
type StatusReportSvcFacade interface {
	StatusReportReaderSvc
	StatusReportWriterSvc
}
