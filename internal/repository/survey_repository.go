package repository

import (
	"context"
	"time"

	"github.com/Cohenad10/grad-major-api/internal/database"
	"github.com/Cohenad10/grad-major-api/internal/recommend"

	"github.com/google/uuid"
)

// SurveySummary is the compact view the operator dashboard lists.
type SurveySummary struct {
	ID               uuid.UUID `json:"id"`
	FocusArea        string    `json:"focus_area"`
	RecommendedMajor string    `json:"recommended_major"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

type SurveyRepository interface {
	Insert(ctx context.Context, s recommend.Survey, recommendedMajor string) (uuid.UUID, error)
	Count(ctx context.Context) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]SurveySummary, error)
}

type PostgresSurveyRepository struct {
	db database.DB
}

func NewPostgresSurveyRepository(db database.DB) *PostgresSurveyRepository {
	return &PostgresSurveyRepository{db: db}
}

func (r *PostgresSurveyRepository) Insert(ctx context.Context, s recommend.Survey, recommendedMajor string) (uuid.UUID, error) {
	id := uuid.New()

	_, err := r.db.Exec(ctx,
		`INSERT INTO survey_responses (
			id, q1, q2, q3, q4, q5, q6, q7, q8, q9, q10,
			q11, q12, q13, q14, q15,
			r1, i1, a1, s1, e1, c1,
			recommended_major
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		           $12, $13, $14, $15, $16,
		           $17, $18, $19, $20, $21, $22,
		           $23)`,
		id, s.Q1, s.Q2, s.Q3, s.Q4, s.Q5, s.Q6, s.Q7, s.Q8, s.Q9, s.Q10,
		s.Q11, s.Q12, s.Q13, s.Q14, s.Q15,
		s.R1, s.I1, s.A1, s.S1, s.E1, s.C1,
		recommendedMajor,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresSurveyRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM survey_responses`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresSurveyRepository) ListRecent(ctx context.Context, limit int) ([]SurveySummary, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(q7, ''), COALESCE(recommended_major, ''), submitted_at
		 FROM survey_responses
		 ORDER BY submitted_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SurveySummary, 0)
	for rows.Next() {
		var s SurveySummary
		if err := rows.Scan(&s.ID, &s.FocusArea, &s.RecommendedMajor, &s.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
