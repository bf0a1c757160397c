package repository

import (
	"context"

	"github.com/Cohenad10/grad-major-api/internal/database"
	"github.com/Cohenad10/grad-major-api/internal/recommend"
)

// ElementRow is the write-side shape for one skill or knowledge rating.
type ElementRow struct {
	SOCCode    string
	ElementID  string
	Name       string
	Importance *float64
	Level      *float64
}

type ElementRepository interface {
	ListSkills(ctx context.Context) ([]recommend.ElementRecord, error)
	ListKnowledge(ctx context.Context) ([]recommend.ElementRecord, error)
	ReplaceSkills(ctx context.Context, rows []ElementRow) (int64, error)
	ReplaceKnowledge(ctx context.Context, rows []ElementRow) (int64, error)
}

type PostgresElementRepository struct {
	db database.DB
}

func NewPostgresElementRepository(db database.DB) *PostgresElementRepository {
	return &PostgresElementRepository{db: db}
}

func (r *PostgresElementRepository) ListSkills(ctx context.Context) ([]recommend.ElementRecord, error) {
	return r.list(ctx, `SELECT soc_code, COALESCE(skill_name, ''), importance FROM job_skills ORDER BY id`)
}

func (r *PostgresElementRepository) ListKnowledge(ctx context.Context) ([]recommend.ElementRecord, error) {
	return r.list(ctx, `SELECT soc_code, COALESCE(knowledge_name, ''), importance FROM job_knowledge ORDER BY id`)
}

func (r *PostgresElementRepository) list(ctx context.Context, query string) ([]recommend.ElementRecord, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recommend.ElementRecord, 0)
	for rows.Next() {
		var rec recommend.ElementRecord
		if err := rows.Scan(&rec.SOCCode, &rec.Name, &rec.Importance); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresElementRepository) ReplaceSkills(ctx context.Context, rows []ElementRow) (int64, error) {
	return r.replace(ctx, "job_skills", "skill_name", rows)
}

func (r *PostgresElementRepository) ReplaceKnowledge(ctx context.Context, rows []ElementRow) (int64, error) {
	return r.replace(ctx, "job_knowledge", "knowledge_name", rows)
}

// replace truncates and reloads one element table in a single transaction so
// readers never observe a half-loaded table.
func (r *PostgresElementRepository) replace(ctx context.Context, table, nameCol string, rows []ElementRow) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM `+table); err != nil {
		return 0, err
	}

	var inserted int64
	for _, row := range rows {
		n, err := tx.Exec(ctx,
			`INSERT INTO `+table+` (soc_code, element_id, `+nameCol+`, importance, level)
			 VALUES ($1, $2, $3, $4, $5)`,
			row.SOCCode, row.ElementID, row.Name, row.Importance, row.Level,
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
