package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (h *Handler) GetAllClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.repository.GetAllClasses()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب قائمة الفصول بنجاح", classes)
}

func (h *Handler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InstitutionID int64  `json:"institutionID" validate:"required"`
		Name          string `json:"name" validate:"required"`
		TeacherID     *int64 `json:"teacherID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	class := &domain.Class{
		InstitutionID: req.InstitutionID,
		Name:          req.Name,
		TeacherID:     req.TeacherID,
	}

	if err := h.repository.CreateClass(class); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم إنشاء الفصل بنجاح", class)
}

func (h *Handler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الفصل غير صالح")
		return
	}

	var req struct {
		Name      *string `json:"name"`
		TeacherID *int64  `json:"teacherID"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	class, err := h.repository.GetClassByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "الفصل غير موجود")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.TeacherID != nil {
		class.TeacherID = req.TeacherID
	}

	if err := h.repository.UpdateClass(class); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "فشل تحديث بيانات الفصل، يرجى المحاولة مرة أخرى")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "تم تحديث بيانات الفصل بنجاح", class)
}

func (h *Handler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الفصل غير صالح")
		return
	}

	if err := h.repository.DeleteClass(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف الفصل بنجاح", nil)
}

func (h *Handler) GetClassStudents(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الفصل غير صالح")
		return
	}

	students, err := h.repository.GetClassStudents(id)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب طلاب الفصل بنجاح", students)
}

func (h *Handler) AddStudentToClass(w http.ResponseWriter, r *http.Request) {
	classID, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الفصل غير صالح")
		return
	}

	var req struct {
		StudentID int64 `json:"studentID" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.SetStudentClass(req.StudentID, &classID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "الطالب غير موجود")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "تم إضافة الطالب إلى الفصل بنجاح", nil)
}

func (h *Handler) RemoveStudentFromClass(w http.ResponseWriter, r *http.Request) {
	studentID, err := idParam(r, "studentID")
	if err != nil {
		h.errorResponse(w, r, "معرف الطالب غير صالح")
		return
	}

	if err := h.repository.SetStudentClass(studentID, nil); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "الطالب غير موجود")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "تم إزالة الطالب من الفصل بنجاح", nil)
}
