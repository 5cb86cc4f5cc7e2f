package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/smartdom/shift_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AttendanceRepo:   newPgxAttendanceRepository(dbPool),
		VoucherRepo:      newPgxVoucherRepository(dbPool),
		AbsenceRepo:      newPgxAbsenceRepository(dbPool),
		ClosingRepo:      newPgxClosingRepository(dbPool),
		LocationRepo:     newPgxLocationRepository(dbPool),
		EmployeeRepo:     newPgxEmployeeRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		StatusReportRepo: newPgxStatusReportRepository(dbPool),
		TurnNoteRepo:     newPgxTurnNoteRepository(dbPool),
	}
}
