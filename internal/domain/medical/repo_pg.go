package medical

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

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

const medicationCols = `id, patient_id, name, dosage, frequency, created_at, updated_at`

func (r *repoPG) CreateMedication(ctx context.Context, m *Medication) error {
	m.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medications (id, patient_id, name, dosage, frequency)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		m.ID, m.PatientID, m.Name, m.Dosage, m.Frequency,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
}

func (r *repoPG) GetMedicationByID(ctx context.Context, id uuid.UUID) (*Medication, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+medicationCols+` FROM medications WHERE id = $1`, id)

	m := &Medication{}
	err := row.Scan(&m.ID, &m.PatientID, &m.Name, &m.Dosage, &m.Frequency, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMedicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

const historyCols = `id, patient_id, condition, diagnosis_date, status, created_at, updated_at`

func (r *repoPG) CreateHistory(ctx context.Context, h *MedicalHistory) error {
	h.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medical_histories (id, patient_id, condition, diagnosis_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		h.ID, h.PatientID, h.Condition, h.DiagnosisDate, h.Status,
	).Scan(&h.CreatedAt, &h.UpdatedAt)
}

func (r *repoPG) GetHistoryByID(ctx context.Context, id uuid.UUID) (*MedicalHistory, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+historyCols+` FROM medical_histories WHERE id = $1`, id)

	h := &MedicalHistory{}
	err := row.Scan(&h.ID, &h.PatientID, &h.Condition, &h.DiagnosisDate, &h.Status, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHistoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *repoPG) CountHistories(ctx context.Context, patientID uuid.UUID, keyword string) (int, error) {
	query := `SELECT COUNT(*) FROM medical_histories WHERE patient_id = $1`
	args := []any{patientID}
	if keyword != "" {
		query += ` AND condition ILIKE $2`
		args = append(args, "%"+keyword+"%")
	}

	var count int
	if err := r.conn(ctx).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListHistories pages through a patient's history in insertion order. The
// id tiebreak keeps the order stable across rows sharing one created_at.
func (r *repoPG) ListHistories(ctx context.Context, patientID uuid.UUID, keyword string, limit, offset int) ([]MedicalHistory, error) {
	query := `SELECT ` + historyCols + ` FROM medical_histories WHERE patient_id = $1`
	args := []any{patientID}
	if keyword != "" {
		query += ` AND condition ILIKE $2`
		args = append(args, "%"+keyword+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at ASC, id ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make([]MedicalHistory, 0)
	for rows.Next() {
		var h MedicalHistory
		if err := rows.Scan(&h.ID, &h.PatientID, &h.Condition, &h.DiagnosisDate, &h.Status, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		histories = append(histories, h)
	}
	return histories, rows.Err()
}
