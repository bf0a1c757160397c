// Command loader builds the occupation catalog from O*NET database files.
// It expects the tab-delimited text distribution (Occupation Data.txt,
// Skills.txt, Knowledge.txt, Job Zones.txt, Interests.txt) in one directory
// and reloads the jobs, job_skills and job_knowledge tables from it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Cohenad10/grad-major-api/internal/config"
	"github.com/Cohenad10/grad-major-api/internal/database"
	"github.com/Cohenad10/grad-major-api/internal/database/migration"
	dbpostgres "github.com/Cohenad10/grad-major-api/internal/database/postgres"
	"github.com/Cohenad10/grad-major-api/internal/infrastructure/cache"
	"github.com/Cohenad10/grad-major-api/internal/onet"
	"github.com/Cohenad10/grad-major-api/internal/repository"
	"github.com/Cohenad10/grad-major-api/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dataDir := flag.String("data", "data", "directory containing the O*NET text files")
	migrationsDir := flag.String("migrations", "migrations", "directory containing SQL migrations")
	skipMigrations := flag.Bool("skip-migrations", false, "do not run migrations before loading")
	replace := flag.Bool("replace", true, "delete the existing catalog before inserting")
	flag.Parse()

	logger := log.New(os.Stdout, "[loader] ", log.LstdFlags|log.LUTC)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, config.LoadDatabase())
	if err != nil {
		logger.Fatalf("connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if !*skipMigrations {
		runner := migration.Runner{Dir: *migrationsDir, Logger: logger}
		if err := runner.Run(ctx, db.SQLDB()); err != nil {
			logger.Fatalf("run migrations: %v", err)
		}
	}

	if err := load(ctx, db, *dataDir, *replace, logger); err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	// The aggregate buckets memoize the old element tables; drop them so
	// the next request rebuilds from the fresh load.
	redis := cache.NewRedis(logger)
	if err := redis.Delete(ctx, usecase.AggregateCacheKey); err != nil {
		logger.Printf("cache invalidation failed: %v", err)
	}
}

func load(ctx context.Context, db database.DB, dataDir string, replace bool, logger *log.Logger) error {
	occs, err := readOccupations(filepath.Join(dataDir, "Occupation Data.txt"))
	if err != nil {
		return err
	}

	kept := make(map[string]bool)
	rows := make([]repository.OccupationRow, 0)
	for _, o := range occs {
		if !onet.IsCatalogRelevant(o.Title, o.SOCCode) {
			continue
		}
		levels := onet.LevelsForTitle(o.Title)
		kept[o.SOCCode] = true
		rows = append(rows, repository.OccupationRow{
			SOCCode:     o.SOCCode,
			Title:       o.Title,
			Description: o.Description,
			FocusArea:   onet.FocusAreaForTitle(o.Title),

			RequiredDataSkill:     levels.DataSkill,
			RequiredTechInterest:  levels.TechInterest,
			RequiredCommunication: levels.Communication,
			StabilityLevel:        levels.Stability,
			SalaryLevel:           levels.Salary,
			RemotePossible:        levels.Remote,
		})
	}
	if len(rows) == 0 {
		return fmt.Errorf("no relevant occupations in %s", dataDir)
	}

	occupationRepo := repository.NewPostgresOccupationRepository(db)
	elementRepo := repository.NewPostgresElementRepository(db)

	if replace {
		if err := occupationRepo.DeleteAll(ctx); err != nil {
			return err
		}
	}

	inserted, err := occupationRepo.InsertBatch(ctx, rows)
	if err != nil {
		return err
	}
	logger.Printf("inserted %d occupations", inserted)

	skills, err := readElementRows(filepath.Join(dataDir, "Skills.txt"), kept)
	if err != nil {
		return err
	}
	n, err := elementRepo.ReplaceSkills(ctx, skills)
	if err != nil {
		return err
	}
	logger.Printf("loaded %d skill ratings", n)

	knowledge, err := readElementRows(filepath.Join(dataDir, "Knowledge.txt"), kept)
	if err != nil {
		return err
	}
	n, err = elementRepo.ReplaceKnowledge(ctx, knowledge)
	if err != nil {
		return err
	}
	logger.Printf("loaded %d knowledge ratings", n)

	if err := loadJobZones(ctx, occupationRepo, filepath.Join(dataDir, "Job Zones.txt"), kept, logger); err != nil {
		return err
	}
	if err := loadInterests(ctx, occupationRepo, filepath.Join(dataDir, "Interests.txt"), kept, logger); err != nil {
		return err
	}

	return nil
}

func readOccupations(path string) ([]onet.Occupation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return onet.ReadOccupations(f)
}

func readElementRows(path string, kept map[string]bool) ([]repository.ElementRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	elements, err := onet.ReadElements(f)
	if err != nil {
		return nil, err
	}

	rows := make([]repository.ElementRow, 0, len(elements))
	for _, e := range elements {
		if !kept[e.SOCCode] {
			continue
		}
		rows = append(rows, repository.ElementRow{
			SOCCode:    e.SOCCode,
			ElementID:  e.ElementID,
			Name:       e.Name,
			Importance: e.Importance,
			Level:      e.Level,
		})
	}
	return rows, nil
}

func loadJobZones(ctx context.Context, repo repository.OccupationRepository, path string, kept map[string]bool, logger *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("skipping job zones: %v", err)
			return nil
		}
		return err
	}
	defer f.Close()

	zones, err := onet.ReadJobZones(f)
	if err != nil {
		return err
	}

	var updated int
	for _, z := range zones {
		if !kept[z.SOCCode] {
			continue
		}
		if err := repo.UpdateJobZone(ctx, z.SOCCode, z.Zone); err != nil {
			return err
		}
		updated++
	}
	logger.Printf("updated %d job zones", updated)
	return nil
}

func loadInterests(ctx context.Context, repo repository.OccupationRepository, path string, kept map[string]bool, logger *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("skipping interests: %v", err)
			return nil
		}
		return err
	}
	defer f.Close()

	profiles, err := onet.ReadInterests(f)
	if err != nil {
		return err
	}

	var updated, partial int
	for _, p := range profiles {
		if !kept[p.SOCCode] {
			continue
		}
		if p.R == nil || p.I == nil || p.A == nil || p.S == nil || p.E == nil || p.C == nil {
			partial++
			continue
		}
		scores := [6]float64{*p.R, *p.I, *p.A, *p.S, *p.E, *p.C}
		if err := repo.UpdateInterests(ctx, p.SOCCode, scores); err != nil {
			return err
		}
		updated++
	}
	logger.Printf("updated %d interest profiles (%d incomplete skipped)", updated, partial)
	return nil
}
