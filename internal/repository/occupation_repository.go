package repository

import (
	"context"

	"github.com/Cohenad10/grad-major-api/internal/database"
	"github.com/Cohenad10/grad-major-api/internal/recommend"
)

// OccupationRow is the write-side shape used by the loader. The read side
// returns recommend.Occupation directly so the engine never re-maps columns.
type OccupationRow struct {
	SOCCode     string
	Title       string
	Description string
	FocusArea   string

	RequiredDataSkill     int
	RequiredTechInterest  int
	RequiredCommunication int
	StabilityLevel        int
	SalaryLevel           int
	RemotePossible        bool
}

type OccupationRepository interface {
	ListAll(ctx context.Context) ([]recommend.Occupation, error)
	Count(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, rows []OccupationRow) (int64, error)
	UpdateJobZone(ctx context.Context, socCode string, zone int) error
	UpdateInterests(ctx context.Context, socCode string, scores [6]float64) error
	DeleteAll(ctx context.Context) error
}

type PostgresOccupationRepository struct {
	db database.DB
}

func NewPostgresOccupationRepository(db database.DB) *PostgresOccupationRepository {
	return &PostgresOccupationRepository{db: db}
}

// ListAll returns the full catalog in insertion order. Ordering matters: the
// engine breaks score ties and resolves duplicate SOC codes by catalog
// position.
func (r *PostgresOccupationRepository) ListAll(ctx context.Context) ([]recommend.Occupation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT soc_code, COALESCE(title, ''), COALESCE(description, ''), COALESCE(focus_area, ''),
		        required_data_skill, required_tech_interest, required_communication,
		        stability_level, salary_level, COALESCE(remote_possible, FALSE),
		        job_zone, riasec_r, riasec_i, riasec_a, riasec_s, riasec_e, riasec_c
		 FROM jobs
		 ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recommend.Occupation, 0)
	for rows.Next() {
		var o recommend.Occupation
		if err := rows.Scan(
			&o.SOCCode, &o.Title, &o.Description, &o.FocusArea,
			&o.RequiredDataSkill, &o.RequiredTechInterest, &o.RequiredCommunication,
			&o.StabilityLevel, &o.SalaryLevel, &o.RemotePossible,
			&o.JobZone, &o.RiasecR, &o.RiasecI, &o.RiasecA, &o.RiasecS, &o.RiasecE, &o.RiasecC,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOccupationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresOccupationRepository) InsertBatch(ctx context.Context, occs []OccupationRow) (int64, error) {
	if len(occs) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var inserted int64
	for _, o := range occs {
		n, err := tx.Exec(ctx,
			`INSERT INTO jobs (
				soc_code, title, description, focus_area,
				required_data_skill, required_tech_interest, required_communication,
				stability_level, salary_level, remote_possible
			 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			o.SOCCode, o.Title, o.Description, o.FocusArea,
			o.RequiredDataSkill, o.RequiredTechInterest, o.RequiredCommunication,
			o.StabilityLevel, o.SalaryLevel, o.RemotePossible,
		)
		if err != nil {
			return 0, err
		}
		inserted += n
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *PostgresOccupationRepository) UpdateJobZone(ctx context.Context, socCode string, zone int) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET job_zone = $2 WHERE soc_code = $1`, socCode, zone)
	return err
}

func (r *PostgresOccupationRepository) UpdateInterests(ctx context.Context, socCode string, scores [6]float64) error {
	_, err := r.db.Exec(ctx,
		`UPDATE jobs SET riasec_r = $2, riasec_i = $3, riasec_a = $4,
		                 riasec_s = $5, riasec_e = $6, riasec_c = $7
		 WHERE soc_code = $1`,
		socCode, scores[0], scores[1], scores[2], scores[3], scores[4], scores[5],
	)
	return err
}

func (r *PostgresOccupationRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs`)
	return err
}
