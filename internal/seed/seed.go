package seed

import (
	"log/slog"

	"github.com/madrasa-dev/school-manager/backend/internal/config"
	"github.com/madrasa-dev/school-manager/backend/internal/domain"
	"github.com/madrasa-dev/school-manager/backend/internal/repository"
	"github.com/madrasa-dev/school-manager/backend/internal/utils"
)

// periods are the lesson times of the demo school day. The late periods sit
// close to the bottom of the visible window on purpose, so the rendered demo
// grid exercises short blocks as well as full-height ones.
var periods = [][2]string{
	{"08:00", "09:00"},
	{"09:00", "10:00"},
	{"10:30", "12:00"},
	{"12:30", "14:00"},
	{"14:00", "14:45"},
}

var workingDays = []domain.Day{domain.DaySun, domain.DayMon, domain.DayTue, domain.DayWed, domain.DayThu}

var classNames = []string{"الصف الأول أ", "الصف الأول ب", "الصف الثاني أ", "الصف الثالث أ"}

// SeedDemoData fills an empty database with a small coherent school: one
// institution, a teaching staff with accounts, classes with students, and a
// full week of lessons. Failures are logged and skipped so a partial rerun
// still makes progress.
func SeedDemoData(repo *repository.Repository, cfg *config.Config) {
	institution := &domain.Institution{
		Name:    "مدرسة النور الأهلية",
		Email:   "info@" + cfg.Email.UserDomain,
		Phone:   utils.GenerateRandomPhone(),
		Address: "حي الروضة، الرياض",
	}

	if err := repo.CreateInstitution(institution); err != nil {
		slog.Error("failed to insert institution", "error", err)
		return
	}

	teachers := make([]*domain.Teacher, 0, 6)
	for i := 0; i < 6; i++ {
		teacher := utils.GenerateRandomTeacher(institution.ID, cfg.Email.UserDomain)
		if err := repo.CreateTeacher(teacher); err != nil {
			slog.Error("failed to insert teacher", "error", err)
			continue
		}

		user, err := utils.GenerateRandomUser(cfg.Seed.User.Password, cfg.Email.UserDomain, domain.RoleTeacher, &teacher.ID)
		if err != nil {
			slog.Error("failed to generate teacher account", "error", err)
			continue
		}
		if err := repo.CreateUser(user); err != nil {
			slog.Error("failed to insert teacher account", "error", err)
		}

		teachers = append(teachers, teacher)
	}

	if len(teachers) == 0 {
		slog.Error("no teachers inserted, aborting")
		return
	}

	for i, name := range classNames {
		homeroom := teachers[i%len(teachers)]
		class := &domain.Class{
			InstitutionID: institution.ID,
			Name:          name,
			TeacherID:     &homeroom.ID,
		}
		if err := repo.CreateClass(class); err != nil {
			slog.Error("failed to insert class", "class", name, "error", err)
			continue
		}

		for j := 0; j < 10; j++ {
			student := utils.GenerateRandomStudent(&class.ID)
			if err := repo.CreateStudent(student); err != nil {
				slog.Error("failed to insert student", "error", err)
			}
		}

		inserted := 0
		for _, day := range workingDays {
			for p, period := range periods {
				slot := &domain.TimetableSlot{
					ClassID:   class.ID,
					TeacherID: teachers[(i+p)%len(teachers)].ID,
					Day:       day,
					StartTime: period[0],
					EndTime:   period[1],
				}
				if err := repo.CreateSlot(slot); err != nil {
					slog.Error("failed to insert slot", "class", name, "error", err)
					continue
				}
				inserted++
			}
		}

		slog.Info("seeded class", "class", name, "slots", inserted)
	}
}
