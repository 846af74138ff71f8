package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/ar"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ar_translations "github.com/go-playground/validator/v10/translations/ar"
	"github.com/madrasa-dev/school-manager/backend/internal/config"
	"github.com/madrasa-dev/school-manager/backend/internal/domain"
	"github.com/madrasa-dev/school-manager/backend/internal/repository"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	arLocale := ar.New()
	uni := ut.New(arLocale, arLocale)
	trans, _ := uni.GetTranslator("ar")
	if err := ar_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a signed-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).Delete("/", h.DeleteUser)
			})
		})

		r.Route("/institutions", func(r chi.Router) {
			r.Get("/", h.GetAllInstitutions)
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Post("/", h.CreateInstitution)
				r.Patch("/{id}", h.UpdateInstitution)
				r.Delete("/{id}", h.DeleteInstitution)
			})
		})

		r.Route("/teachers", func(r chi.Router) {
			r.Get("/", h.GetAllTeachers)
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Post("/", h.CreateTeacher)
				r.Patch("/{id}", h.UpdateTeacher)
				r.Delete("/{id}", h.DeleteTeacher)
			})
		})

		r.Route("/classes", func(r chi.Router) {
			r.Get("/", h.GetAllClasses)
			r.Get("/{id}/students", h.GetClassStudents)
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Post("/", h.CreateClass)
				r.Patch("/{id}", h.UpdateClass)
				r.Delete("/{id}", h.DeleteClass)
				r.Post("/{id}/students", h.AddStudentToClass)
				r.Delete("/{id}/students/{studentID}", h.RemoveStudentFromClass)
			})
		})

		r.Route("/students", func(r chi.Router) {
			r.Get("/", h.GetAllStudents)
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Post("/", h.CreateStudent)
				r.Patch("/{id}", h.UpdateStudent)
				r.Delete("/{id}", h.DeleteStudent)
			})
		})

		r.Route("/grades", func(r chi.Router) {
			r.Get("/", h.GetGrades)
			r.Post("/", h.CreateGrade)
			r.Patch("/{id}", h.UpdateGrade)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/{id}", h.DeleteGrade)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.GetAttendance)
			r.Post("/", h.MarkAttendance)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/{id}", h.DeleteAttendance)
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.GetAllCourses)
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Post("/", h.CreateCourse)
				r.Delete("/{id}", h.DeleteCourse)
			})
		})

		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", h.GetAllSubscriptions)
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Post("/", h.CreateSubscription)
				r.Patch("/{id}/status", h.UpdateSubscriptionStatus)
			})
		})

		r.Route("/timetable", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/all", h.GetAllSlots)
			r.With(h.myInfo).Get("/teacher", h.GetTeacherTimetable)
			r.Get("/class/{id}", h.GetClassTimetable)
			r.Get("/grid", h.GetTimetableGrid)
			r.Get("/week", h.GetWeekWindow)
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Post("/", h.AddSlot)
				r.Delete("/{id}", h.DeleteSlot)
			})
		})
	})
}
