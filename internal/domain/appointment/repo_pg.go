package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medrec/emr/internal/domain/doctor"
	"github.com/medrec/emr/internal/domain/patient"
	"github.com/medrec/emr/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) conn(ctx context.Context) db.Querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const appointmentCols = `id, patient_id, doctor_id, date, reason, notes, is_able, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (id, patient_id, doctor_id, date, reason, notes, is_able)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`,
		a.ID, a.PatientID, a.DoctorID, a.Date, a.Reason, a.Notes, a.IsAble,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id)

	a := &Appointment{}
	err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.Date, &a.Reason, &a.Notes, &a.IsAble, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetDetailByID reads the appointment with its patient and doctor in a
// single joined query.
func (r *repoPG) GetDetailByID(ctx context.Context, id uuid.UUID) (*Detail, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		SELECT
			a.id, a.patient_id, a.doctor_id, a.date, a.reason, a.notes, a.is_able,
			a.created_at, a.updated_at,
			p.id, p.first_name, p.last_name, p.date_of_birth, p.gender,
			p.created_at, p.updated_at,
			d.id, d.name, d.created_at, d.updated_at
		FROM appointments a
		LEFT JOIN patients p ON p.id = a.patient_id
		LEFT JOIN doctors d ON d.id = a.doctor_id
		WHERE a.id = $1`, id)

	det := &Detail{Patient: &patient.Patient{}, Doctor: &doctor.Doctor{}}
	err := row.Scan(
		&det.ID, &det.PatientID, &det.DoctorID, &det.Date, &det.Reason, &det.Notes, &det.IsAble,
		&det.CreatedAt, &det.UpdatedAt,
		&det.Patient.ID, &det.Patient.FirstName, &det.Patient.LastName,
		&det.Patient.DateOfBirth, &det.Patient.Gender,
		&det.Patient.CreatedAt, &det.Patient.UpdatedAt,
		&det.Doctor.ID, &det.Doctor.Name, &det.Doctor.CreatedAt, &det.Doctor.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return det, nil
}

func (r *repoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE appointments SET
			date=$2, reason=$3, notes=$4, is_able=$5, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Date, a.Reason, a.Notes, a.IsAble,
	)
	return err
}
