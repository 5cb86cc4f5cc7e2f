package services

import (
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	cutover := cfg.WorkdayCutoverHour

	// The turn identifier is built first since the closing and report
	// services derive their windows from it.
	container.Turn = NewTurnService(repos.ClosingRepo, cutover)

	container.Closing = NewClosingService(
		repos.ClosingRepo,
		repos.AttendanceRepo,
		repos.VoucherRepo,
		repos.AbsenceRepo,
		container.Turn,
		cutover,
	)

	container.Attendance = NewAttendanceService(repos.AttendanceRepo, repos.ClosingRepo, cutover)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.ClosingRepo, cutover)
	container.Absence = NewAbsenceService(repos.AbsenceRepo, repos.ClosingRepo, cutover)
	container.TurnNote = NewTurnNoteService(repos.TurnNoteRepo, cutover)
	container.StatusReport = NewStatusReportService(repos.StatusReportRepo, container.Closing, cutover)

	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Location = NewLocationService(repos.LocationRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
