package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service container.
type RepositoryProvider struct {
	AttendanceRepo   AttendanceRepository
	VoucherRepo      VoucherRepository
	AbsenceRepo      AbsenceRepository
	ClosingRepo      ClosingRepository
	LocationRepo     LocationRepository
	EmployeeRepo     EmployeeRepository
	UserRepo         UserRepository
	StatusReportRepo StatusReportRepository
	TurnNoteRepo     TurnNoteRepository
}
