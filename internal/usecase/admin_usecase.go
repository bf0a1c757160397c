package usecase

import (
	"context"
	"errors"

	"github.com/Cohenad10/grad-major-api/internal/pkg/jwt"
	"github.com/Cohenad10/grad-major-api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

const recentSubmissionsLimit = 20

type AdminStats struct {
	OccupationCount   int64                      `json:"occupation_count"`
	SubmissionCount   int64                      `json:"submission_count"`
	RecentSubmissions []repository.SurveySummary `json:"recent_submissions"`
}

type AdminUsecase interface {
	Login(ctx context.Context, password string) (string, error)
	Stats(ctx context.Context) (AdminStats, error)
}

type Admin struct {
	passwordHash []byte
	jwt          jwt.Service

	occupations repository.OccupationRepository
	surveys     repository.SurveyRepository
}

func NewAdminUsecase(passwordHash string, jwtSvc jwt.Service, occupations repository.OccupationRepository, surveys repository.SurveyRepository) *Admin {
	return &Admin{
		passwordHash: []byte(passwordHash),
		jwt:          jwtSvc,
		occupations:  occupations,
		surveys:      surveys,
	}
}

func (u *Admin) Login(ctx context.Context, password string) (string, error) {
	if len(u.passwordHash) == 0 || password == "" {
		return "", ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return "", ErrUnauthorized
	}

	token, err := u.jwt.GenerateToken(jwt.RoleAdmin)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}

func (u *Admin) Stats(ctx context.Context) (AdminStats, error) {
	occCount, err := u.occupations.Count(ctx)
	if err != nil {
		return AdminStats{}, ErrInternal
	}
	subCount, err := u.surveys.Count(ctx)
	if err != nil {
		return AdminStats{}, ErrInternal
	}
	recent, err := u.surveys.ListRecent(ctx, recentSubmissionsLimit)
	if err != nil {
		return AdminStats{}, ErrInternal
	}

	return AdminStats{
		OccupationCount:   occCount,
		SubmissionCount:   subCount,
		RecentSubmissions: recent,
	}, nil
}
