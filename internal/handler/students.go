package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (h *Handler) GetAllStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.repository.GetAllStudents()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب قائمة الطلاب بنجاح", students)
}

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Phone   string `json:"phone" validate:"required"`
		Grade   string `json:"grade" validate:"required"`
		ClassID *int64 `json:"classID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	student := &domain.Student{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Grade:   req.Grade,
		ClassID: req.ClassID,
	}

	if err := h.repository.CreateStudent(student); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم إنشاء الطالب بنجاح", student)
}

func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الطالب غير صالح")
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Email   *string `json:"email" validate:"omitempty,email"`
		Phone   *string `json:"phone"`
		Grade   *string `json:"grade"`
		ClassID *int64  `json:"classID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	student, err := h.repository.GetStudentByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "الطالب غير موجود")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Grade != nil {
		student.Grade = *req.Grade
	}
	if req.ClassID != nil {
		student.ClassID = req.ClassID
	}

	if err := h.repository.UpdateStudent(student); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "فشل تحديث بيانات الطالب، يرجى المحاولة مرة أخرى")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "تم تحديث بيانات الطالب بنجاح", student)
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الطالب غير صالح")
		return
	}

	if err := h.repository.DeleteStudent(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف الطالب بنجاح", nil)
}
