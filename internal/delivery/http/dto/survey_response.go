package dto

import (
	"github.com/Cohenad10/grad-major-api/internal/usecase"
)

type JobMatchResponse struct {
	Title       string  `json:"title"`
	SOCCode     string  `json:"soc_code"`
	Score       float64 `json:"score"`
	FocusArea   string  `json:"focus_area"`
	Description string  `json:"description"`
	JobZone     *int    `json:"job_zone"`
}

type SurveyResultResponse struct {
	DataID           string             `json:"data_id"`
	RecommendedMajor string             `json:"recommended_major"`
	TopJobs          []JobMatchResponse `json:"top_jobs"`
}

func NewSurveyResultResponse(res usecase.SurveyResult) SurveyResultResponse {
	jobs := make([]JobMatchResponse, 0, len(res.TopJobs))
	for _, j := range res.TopJobs {
		jobs = append(jobs, JobMatchResponse{
			Title:       j.Title,
			SOCCode:     j.SOCCode,
			Score:       j.Score,
			FocusArea:   j.FocusArea,
			Description: j.Description,
			JobZone:     j.JobZone,
		})
	}

	return SurveyResultResponse{
		DataID:           res.DataID.String(),
		RecommendedMajor: res.RecommendedMajor,
		TopJobs:          jobs,
	}
}
