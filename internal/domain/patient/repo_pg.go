package patient

import (
	"context"
	"errors"

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

const patientCols = `id, first_name, last_name, date_of_birth, gender, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients (id, first_name, last_name, date_of_birth, gender)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	row := r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id)

	p := &Patient{}
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE patients SET
			first_name=$2, last_name=$3, date_of_birth=$4, gender=$5, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	return err
}

// -- Contact info --

const contactCols = `id, patient_id, email, phone, created_at, updated_at`

func (r *repoPG) CreateContact(ctx context.Context, ci *ContactInfo) error {
	ci.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO contact_infos (id, patient_id, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		ci.ID, ci.PatientID, ci.Email, ci.Phone,
	).Scan(&ci.CreatedAt, &ci.UpdatedAt)
}

func (r *repoPG) GetContactByPatient(ctx context.Context, patientID uuid.UUID) (*ContactInfo, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+contactCols+` FROM contact_infos WHERE patient_id = $1`, patientID)

	ci := &ContactInfo{}
	err := row.Scan(&ci.ID, &ci.PatientID, &ci.Email, &ci.Phone, &ci.CreatedAt, &ci.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrContactNotFound
	}
	if err != nil {
		return nil, err
	}
	return ci, nil
}

// UpdateContactByPatient patches the contact row keyed by patient id. Nil
// fields are left unchanged; a missing row is not an error, matching the
// patch semantics of the update operation.
func (r *repoPG) UpdateContactByPatient(ctx context.Context, patientID uuid.UUID, email, phone *string) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE contact_infos SET
			email = COALESCE($2, email),
			phone = COALESCE($3, phone),
			updated_at = NOW()
		WHERE patient_id = $1`,
		patientID, email, phone,
	)
	return err
}

func (r *repoPG) DeleteContact(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM contact_infos WHERE id = $1`, id)
	return err
}
