package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Cohenad10/grad-major-api/internal/recommend"
	"github.com/Cohenad10/grad-major-api/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrInternal = errors.New("internal error")
)

// AggregateCacheKey holds the reduced skill/knowledge buckets for the whole
// catalog. The loader deletes it after a reload; bump the suffix if the
// Aggregate shape changes.
const AggregateCacheKey = "onet:aggregates:v1"

// Cache is the slice of the redis wrapper this usecase needs. A nil Cache
// disables memoization entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type SurveyResult struct {
	DataID           uuid.UUID
	RecommendedMajor string
	TopJobs          []recommend.JobMatch
}

type SurveyUsecase interface {
	Submit(ctx context.Context, s recommend.Survey) (SurveyResult, error)
}

type Survey struct {
	occupations repository.OccupationRepository
	elements    repository.ElementRepository
	surveys     repository.SurveyRepository
	engine      *recommend.Engine

	cache    Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

func NewSurveyUsecase(
	occupations repository.OccupationRepository,
	elements repository.ElementRepository,
	surveys repository.SurveyRepository,
	engine *recommend.Engine,
	cache Cache,
	cacheTTL time.Duration,
	logger *log.Logger,
) *Survey {
	if logger == nil {
		logger = log.Default()
	}
	return &Survey{
		occupations: occupations,
		elements:    elements,
		surveys:     surveys,
		engine:      engine,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Submit runs the pipeline for one validated survey: snapshot the catalog,
// fetch or rebuild the aggregate buckets, score, persist the submission with
// its recommendation, and return the ranked result.
func (u *Survey) Submit(ctx context.Context, s recommend.Survey) (SurveyResult, error) {
	catalog, err := u.occupations.ListAll(ctx)
	if err != nil {
		return SurveyResult{}, ErrInternal
	}

	aggs, err := u.loadAggregates(ctx)
	if err != nil {
		return SurveyResult{}, ErrInternal
	}

	rec := u.engine.Recommend(s, catalog, aggs)

	dataID, err := u.surveys.Insert(ctx, s, rec.RecommendedMajor)
	if err != nil {
		return SurveyResult{}, ErrInternal
	}

	return SurveyResult{
		DataID:           dataID,
		RecommendedMajor: rec.RecommendedMajor,
		TopJobs:          rec.TopJobs,
	}, nil
}

// loadAggregates serves the buckets from cache when possible. Cache failures
// are logged and ignored; the buckets are always recomputable from the
// element tables.
func (u *Survey) loadAggregates(ctx context.Context) (map[string]recommend.Aggregate, error) {
	if u.cache != nil {
		var cached map[string]recommend.Aggregate
		hit, err := u.cache.GetJSON(ctx, AggregateCacheKey, &cached)
		if err != nil {
			u.logger.Printf("[Survey] aggregate cache read failed: %v", err)
		}
		if hit && cached != nil {
			return cached, nil
		}
	}

	skills, err := u.elements.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	knowledge, err := u.elements.ListKnowledge(ctx)
	if err != nil {
		return nil, err
	}

	aggs := recommend.BuildAggregates(skills, knowledge)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, AggregateCacheKey, aggs, u.cacheTTL); err != nil {
			u.logger.Printf("[Survey] aggregate cache write failed: %v", err)
		}
	}

	return aggs, nil
}
