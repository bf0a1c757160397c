package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/Cohenad10/grad-major-api/internal/config"
	"github.com/Cohenad10/grad-major-api/internal/database"
	"github.com/Cohenad10/grad-major-api/internal/database/migration"
	dbpostgres "github.com/Cohenad10/grad-major-api/internal/database/postgres"
	"github.com/Cohenad10/grad-major-api/internal/delivery/http/middleware"
	"github.com/Cohenad10/grad-major-api/internal/delivery/http/routes"
	"github.com/Cohenad10/grad-major-api/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type surveyResultData struct {
	DataID           string `json:"data_id"`
	RecommendedMajor string `json:"recommended_major"`
	TopJobs          []struct {
		Title     string  `json:"title"`
		SOCCode   string  `json:"soc_code"`
		Score     float64 `json:"score"`
		FocusArea string  `json:"focus_area"`
		JobZone   *int    `json:"job_zone"`
	} `json:"top_jobs"`
}

func TestIntegration_SurveySubmit_AdminStats(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)
	seedCatalog(t, ctx, db)
	defer cleanupCatalog(t, ctx, db)

	hash, err := bcrypt.GenerateFromPassword([]byte("test-admin-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	cfg := config.Config{}
	cfg.App.AppName = "grad-major-api-test"
	cfg.Admin.PasswordHash = string(hash)
	cfg.Admin.JWTSecret = "integration-test-secret"
	cfg.Admin.TokenExpiresIn = time.Minute
	cfg.Recommend.TopN = 5

	app := newTestFiberApp(t, cfg, db)

	data := submitSurvey(t, app)

	if data.RecommendedMajor != "MS in Cybersecurity" {
		t.Fatalf("expected MS in Cybersecurity, got %q", data.RecommendedMajor)
	}
	if len(data.TopJobs) == 0 {
		t.Fatalf("expected non-empty top_jobs")
	}
	if _, err := uuid.Parse(data.DataID); err != nil {
		t.Fatalf("data_id is not a uuid: %q", data.DataID)
	}

	seen := map[string]bool{}
	for i, j := range data.TopJobs {
		if seen[j.SOCCode] {
			t.Fatalf("duplicate soc_code %s in top_jobs", j.SOCCode)
		}
		seen[j.SOCCode] = true
		if i > 0 && data.TopJobs[i-1].Score < j.Score {
			t.Fatalf("top_jobs not sorted desc at index %d", i)
		}
	}

	submitInvalidSurvey(t, app)

	token := adminLogin(t, app)
	checkAdminStats(t, app, token)
}

func submitSurvey(t *testing.T, app *fiber.App) surveyResultData {
	t.Helper()

	payload := map[string]any{
		"q1": 4, "q2": 5, "q3": "structured", "q4": 5, "q5": "independent",
		"q6": 4, "q7": "cybersecurity", "q8": 3, "q9": true, "q10": 4,
		"q11": 4, "q12": 5, "q13": 3, "q14": 4, "q15": 3,
	}
	b, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/api/v1/survey/submit", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("submit request error: %v", err)
	}
	defer resp.Body.Close()

	var env semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", env.Status, env.Message)
	}

	var data surveyResultData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	return data
}

func submitInvalidSurvey(t *testing.T, app *fiber.App) {
	t.Helper()

	payload := map[string]any{"q1": 9, "q3": "chaotic"}
	b, _ := json.Marshal(payload)

	req := httptest.NewRequest("POST", "/api/v1/survey/submit", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("invalid submit request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d", resp.StatusCode)
	}
}

func adminLogin(t *testing.T, app *fiber.App) string {
	t.Helper()

	b, _ := json.Marshal(map[string]string{"password": "test-admin-pass"})
	req := httptest.NewRequest("POST", "/api/v1/admin/login", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("login request error: %v", err)
	}
	defer resp.Body.Close()

	var env semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode login envelope: %v", err)
	}
	if env.Status != fiber.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", env.Status, env.Message)
	}

	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if data.AccessToken == "" {
		t.Fatalf("login: empty access_token")
	}
	return data.AccessToken
}

func checkAdminStats(t *testing.T, app *fiber.App, token string) {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/v1/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("stats request error: %v", err)
	}
	defer resp.Body.Close()

	var env semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode stats envelope: %v", err)
	}
	if env.Status != fiber.StatusOK {
		t.Fatalf("stats: expected 200, got %d (%s)", env.Status, env.Message)
	}

	var data struct {
		OccupationCount int64 `json:"occupation_count"`
		SubmissionCount int64 `json:"submission_count"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode stats data: %v", err)
	}
	if data.OccupationCount == 0 {
		t.Fatalf("stats: expected seeded occupations")
	}
	if data.SubmissionCount == 0 {
		t.Fatalf("stats: expected at least one submission")
	}

	// Without a token the endpoint must refuse.
	unauth := httptest.NewRequest("GET", "/api/v1/admin/stats", nil)
	resp2, err := app.Test(unauth)
	if err != nil {
		t.Fatalf("unauthenticated stats request error: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("stats without token: expected 401, got %d", resp2.StatusCode)
	}
}

func seedCatalog(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	occRepo := repository.NewPostgresOccupationRepository(db)
	elemRepo := repository.NewPostgresElementRepository(db)

	if err := occRepo.DeleteAll(ctx); err != nil {
		t.Fatalf("clear jobs: %v", err)
	}

	_, err := occRepo.InsertBatch(ctx, []repository.OccupationRow{
		{
			SOCCode: "15-1212.00", Title: "Information Security Analysts",
			Description: "Plan and carry out security measures.",
			FocusArea:   "cybersecurity",
			RequiredDataSkill: 4, RequiredTechInterest: 5, RequiredCommunication: 3,
			StabilityLevel: 4, SalaryLevel: 4, RemotePossible: true,
		},
		{
			SOCCode: "15-2051.00", Title: "Data Scientists",
			Description: "Develop and apply analytical models.",
			FocusArea:   "data analysis",
			RequiredDataSkill: 5, RequiredTechInterest: 4, RequiredCommunication: 3,
			StabilityLevel: 4, SalaryLevel: 5, RemotePossible: true,
		},
	})
	if err != nil {
		t.Fatalf("seed jobs: %v", err)
	}

	if err := occRepo.UpdateJobZone(ctx, "15-1212.00", 4); err != nil {
		t.Fatalf("seed job zone: %v", err)
	}

	imp := func(v float64) *float64 { return &v }
	if _, err := elemRepo.ReplaceSkills(ctx, []repository.ElementRow{
		{SOCCode: "15-1212.00", ElementID: "2.A.2.a", Name: "Critical Thinking", Importance: imp(75)},
		{SOCCode: "15-2051.00", ElementID: "2.A.1.e", Name: "Mathematics", Importance: imp(80)},
	}); err != nil {
		t.Fatalf("seed skills: %v", err)
	}
	if _, err := elemRepo.ReplaceKnowledge(ctx, []repository.ElementRow{
		{SOCCode: "15-1212.00", ElementID: "2.C.3.a", Name: "Computers and Electronics", Importance: imp(90)},
	}); err != nil {
		t.Fatalf("seed knowledge: %v", err)
	}
}

func cleanupCatalog(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	for _, q := range []string{
		`DELETE FROM survey_responses`,
		`DELETE FROM job_skills`,
		`DELETE FROM job_knowledge`,
		`DELETE FROM jobs`,
	} {
		if _, err := db.Exec(ctx, q); err != nil {
			t.Logf("cleanup %q: %v", q, err)
		}
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := firstNonEmpty(os.Getenv("GRADMAJOR_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := firstNonEmpty(os.Getenv("GRADMAJOR_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := firstNonEmpty(os.Getenv("GRADMAJOR_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := firstNonEmpty(os.Getenv("GRADMAJOR_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := firstNonEmpty(os.Getenv("GRADMAJOR_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := firstNonEmpty(os.Getenv("GRADMAJOR_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set GRADMAJOR_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	})
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	r := migration.Runner{Dir: resolveMigrationsDir(t)}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	// this file: internal/integration/survey_flow_test.go
	root := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	return filepath.Join(root, "migrations")
}

func newTestFiberApp(t *testing.T, cfg config.Config, db database.DB) *fiber.App {
	t.Helper()

	logger := log.New(os.Stdout, "[test] ", log.LstdFlags)

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	routes.NewRegistry(cfg, db, nil, logger).Register(app)
	return app
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
