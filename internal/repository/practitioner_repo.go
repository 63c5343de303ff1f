package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"jar-rating/internal/domain"
)

var ErrNotFound = errors.New("practitioner not found")

// PractitionerRepository persiste practicantes guardados junto con su
// vector de factores (7 dimensiones, calculado sin comparación).
type PractitionerRepository interface {
	Save(ctx context.Context, record domain.PractitionerRecord, factorVec pgvector.Vector) (domain.PractitionerRecord, error)
	GetByID(ctx context.Context, id string) (domain.PractitionerRecord, error)
	List(ctx context.Context) ([]domain.PractitionerRecord, error)
	Delete(ctx context.Context, id string) error
	// ListSimilar ordena por cercanía en el espacio de factores.
	ListSimilar(ctx context.Context, id string, k int) ([]domain.PractitionerRecord, error)
}

type PgPractitionerRepository struct {
	pool *pgxpool.Pool
}

func NewPgPractitionerRepository(pool *pgxpool.Pool) *PgPractitionerRepository {
	return &PgPractitionerRepository{pool: pool}
}

func (r *PgPractitionerRepository) Save(ctx context.Context, record domain.PractitionerRecord, factorVec pgvector.Vector) (domain.PractitionerRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	const query = `
		INSERT INTO practitioners (id, name, belt, age, weight, fitness, sessions, competition, art, exp_level, factor_vec, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			belt = EXCLUDED.belt,
			age = EXCLUDED.age,
			weight = EXCLUDED.weight,
			fitness = EXCLUDED.fitness,
			sessions = EXCLUDED.sessions,
			competition = EXCLUDED.competition,
			art = EXCLUDED.art,
			exp_level = EXCLUDED.exp_level,
			factor_vec = EXCLUDED.factor_vec
	`
	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.Name,
		record.Belt,
		record.Age,
		record.Weight,
		record.Fitness,
		record.Sessions,
		record.Competition,
		record.Art,
		record.ExpLevel,
		factorVec,
		record.CreatedAt,
	)
	return record, err
}

func (r *PgPractitionerRepository) GetByID(ctx context.Context, id string) (domain.PractitionerRecord, error) {
	const query = `
		SELECT id, name, belt, age, weight, fitness, sessions, competition, art, exp_level, created_at
		FROM practitioners
		WHERE id = $1
	`
	record, err := scanPractitioner(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.PractitionerRecord{}, ErrNotFound
	}
	return record, err
}

func (r *PgPractitionerRepository) List(ctx context.Context) ([]domain.PractitionerRecord, error) {
	const query = `
		SELECT id, name, belt, age, weight, fitness, sessions, competition, art, exp_level, created_at
		FROM practitioners
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPractitioners(rows)
}

func (r *PgPractitionerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM practitioners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PgPractitionerRepository) ListSimilar(ctx context.Context, id string, k int) ([]domain.PractitionerRecord, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT p.id, p.name, p.belt, p.age, p.weight, p.fitness, p.sessions, p.competition, p.art, p.exp_level, p.created_at
		FROM practitioners p, practitioners q
		WHERE q.id = $1 AND p.id <> q.id
		ORDER BY p.factor_vec <=> q.factor_vec
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, id, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPractitioners(rows)
}

func scanPractitioner(row pgx.Row) (domain.PractitionerRecord, error) {
	var record domain.PractitionerRecord
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Belt,
		&record.Age,
		&record.Weight,
		&record.Fitness,
		&record.Sessions,
		&record.Competition,
		&record.Art,
		&record.ExpLevel,
		&record.CreatedAt,
	)
	return record, err
}

func collectPractitioners(rows pgx.Rows) ([]domain.PractitionerRecord, error) {
	var records []domain.PractitionerRecord
	for rows.Next() {
		record, err := scanPractitioner(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
