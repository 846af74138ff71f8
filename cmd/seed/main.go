package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/config"
	"github.com/madrasa-dev/school-manager/backend/internal/domain"
	"github.com/madrasa-dev/school-manager/backend/internal/repository"
	"github.com/madrasa-dev/school-manager/backend/internal/seed"
	"github.com/madrasa-dev/school-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var institutionID int64

	flag.IntVar(&op, "op", 0, "operation to run (1: random users, 2: random teachers, 3: random students, 4: random timetable slots, 5: full demo dataset)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Int64Var(&institutionID, "institution-id", 0, "institution the random teachers belong to")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// create the database pool
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect, so ping explicitly
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to the database", "error", err)
		return
	}

	// create the repository
	repo := repository.NewRepository(cfg, dbpool)

	// run the requested operation
	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("the number of users must be positive")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain, domain.RoleTeacher, nil)
				if err != nil {
					slog.Error("failed to generate a random user", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("failed to insert user", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("users inserted", slog.Int("count", n-cnt))
		}
	case 2:
		if institutionID <= 0 {
			slog.Error("a valid institution id is required")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			teacher := utils.GenerateRandomTeacher(institutionID, cfg.Email.UserDomain)
			if err := repo.CreateTeacher(teacher); err != nil {
				slog.Error("failed to insert teacher", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("teachers inserted", slog.Int("count", n-cnt))
	case 3:
		// spread the students over the existing classes
		classes, err := repo.GetAllClasses()
		if err != nil {
			slog.Error("failed to list classes", slog.String("error", err.Error()))
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			var classID *int64
			if len(classes) > 0 {
				classID = &classes[rand.Intn(len(classes))].ID
			}

			student := utils.GenerateRandomStudent(classID)
			if err := repo.CreateStudent(student); err != nil {
				slog.Error("failed to insert student", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("students inserted", slog.Int("count", n-cnt))
	case 4:
		classes, err := repo.GetAllClasses()
		if err != nil {
			slog.Error("failed to list classes", slog.String("error", err.Error()))
			return
		}
		teachers, err := repo.GetAllTeachers()
		if err != nil {
			slog.Error("failed to list teachers", slog.String("error", err.Error()))
			return
		}
		if len(classes) == 0 || len(teachers) == 0 {
			slog.Error("slots need at least one class and one teacher")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			class := classes[rand.Intn(len(classes))]
			teacher := teachers[rand.Intn(len(teachers))]

			slot := utils.GenerateRandomSlot(class.ID, teacher.ID)
			if err := repo.CreateSlot(slot); err != nil {
				slog.Error("failed to insert slot", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("slots inserted", slog.Int("count", n-cnt))
	case 5:
		seed.SeedDemoData(repo, cfg)
	default:
		slog.Error("unknown operation")
	}
}
