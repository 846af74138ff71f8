package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (h *Handler) GetAllTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.repository.GetAllTeachers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب قائمة المعلمين بنجاح", teachers)
}

func (h *Handler) CreateTeacher(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InstitutionID int64    `json:"institutionID" validate:"required"`
		Name          string   `json:"name" validate:"required"`
		Email         string   `json:"email" validate:"required,email"`
		Phone         string   `json:"phone" validate:"required"`
		Subjects      []string `json:"subjects" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	teacher := &domain.Teacher{
		InstitutionID: req.InstitutionID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Subjects:      req.Subjects,
	}

	if err := h.repository.CreateTeacher(teacher); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم إنشاء المعلم بنجاح", teacher)
}

func (h *Handler) UpdateTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف المعلم غير صالح")
		return
	}

	var req struct {
		Name     *string  `json:"name"`
		Email    *string  `json:"email" validate:"omitempty,email"`
		Phone    *string  `json:"phone"`
		Subjects []string `json:"subjects"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	teacher, err := h.repository.GetTeacherByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "المعلم غير موجود")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Email != nil {
		teacher.Email = *req.Email
	}
	if req.Phone != nil {
		teacher.Phone = *req.Phone
	}
	if req.Subjects != nil {
		teacher.Subjects = req.Subjects
	}

	if err := h.repository.UpdateTeacher(teacher); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "فشل تحديث بيانات المعلم، يرجى المحاولة مرة أخرى")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "تم تحديث بيانات المعلم بنجاح", teacher)
}

func (h *Handler) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف المعلم غير صالح")
		return
	}

	if err := h.repository.DeleteTeacher(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف المعلم بنجاح", nil)
}
