package postgres

import (
	"context"
	"fmt"
	"strings"

	"attendancehub/internal/domain"
)

const attendanceColumns = `event_id, user_email, user_role, personal_code, is_invited, is_rsvped, is_checked_in, created_at, updated_at`

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) domain.AttendanceRepository {
	return &attendanceRepository{
		store: store,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAttendance(row scanner) (*domain.Attendance, error) {
	a := &domain.Attendance{}
	err := row.Scan(&a.EventID, &a.UserEmail, &a.Role, &a.PersonalCode,
		&a.IsInvited, &a.IsRSVPed, &a.IsCheckedIn, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return a, nil
}

func (r *attendanceRepository) Create(ctx context.Context, a *domain.Attendance) error {
	query := `
		INSERT INTO attendances (event_id, user_email, user_role, personal_code, is_invited, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.store.Set(ctx, query, a.EventID, a.UserEmail, a.Role, a.PersonalCode, a.IsInvited, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *attendanceRepository) GetByCode(ctx context.Context, eventID, personalCode string) (*domain.Attendance, error) {
	query := `SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE event_id = $1 AND personal_code = $2
	`
	return scanAttendance(r.store.GetOne(ctx, query, eventID, personalCode))
}

func (r *attendanceRepository) List(ctx context.Context, eventID string, filter domain.AttendanceFilter) ([]*domain.Attendance, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + attendanceColumns + ` FROM attendances WHERE event_id = $1`)
	args := []any{eventID}
	addFilter := func(column string, v *bool) {
		if v == nil {
			return
		}
		args = append(args, *v)
		fmt.Fprintf(&sb, " AND %s = $%d", column, len(args))
	}
	addFilter("is_invited", filter.Invited)
	addFilter("is_rsvped", filter.RSVPed)
	addFilter("is_checked_in", filter.CheckedIn)
	sb.WriteString(" ORDER BY created_at, user_email")

	rows, err := r.store.Get(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	atts := make([]*domain.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		atts = append(atts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return atts, nil
}

func (r *attendanceRepository) SetRSVPed(ctx context.Context, eventID, personalCode string, rsvped bool) error {
	query := `
		UPDATE attendances
		SET is_rsvped = $3, updated_at = NOW()
		WHERE event_id = $1 AND personal_code = $2
	`
	return r.update(ctx, query, eventID, personalCode, rsvped)
}

func (r *attendanceRepository) SetCheckedIn(ctx context.Context, eventID, personalCode string) error {
	query := `
		UPDATE attendances
		SET is_checked_in = TRUE, updated_at = NOW()
		WHERE event_id = $1 AND personal_code = $2
	`
	return r.update(ctx, query, eventID, personalCode)
}

func (r *attendanceRepository) update(ctx context.Context, query string, args ...any) error {
	n, err := r.store.Set(ctx, query, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
