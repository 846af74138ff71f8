package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

// GetGrades lists grades for either a student or a class, picked by query
// parameter. Exactly one of student_id and class_id must be present.
func (h *Handler) GetGrades(w http.ResponseWriter, r *http.Request) {
	studentParam := r.URL.Query().Get("student_id")
	classParam := r.URL.Query().Get("class_id")

	switch {
	case studentParam != "" && classParam == "":
		studentID, err := strconv.ParseInt(studentParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "معرف الطالب غير صالح")
			return
		}
		grades, err := h.repository.GetGradesByStudent(studentID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "تم جلب الدرجات بنجاح", grades)
	case classParam != "" && studentParam == "":
		classID, err := strconv.ParseInt(classParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "معرف الفصل غير صالح")
			return
		}
		grades, err := h.repository.GetGradesByClass(classID)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		h.successResponse(w, r, "تم جلب الدرجات بنجاح", grades)
	default:
		h.errorResponse(w, r, "يجب تحديد معرف الطالب أو معرف الفصل")
	}
}

func (h *Handler) CreateGrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID int64   `json:"studentID" validate:"required"`
		ClassID   int64   `json:"classID" validate:"required"`
		Subject   string  `json:"subject" validate:"required"`
		Score     float64 `json:"score" validate:"gte=0"`
		MaxScore  float64 `json:"maxScore" validate:"required,gt=0"`
		Term      string  `json:"term" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Score > req.MaxScore {
		h.errorResponse(w, r, "الدرجة لا يمكن أن تتجاوز الدرجة العظمى")
		return
	}

	grade := &domain.Grade{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Subject:   req.Subject,
		Score:     req.Score,
		MaxScore:  req.MaxScore,
		Term:      req.Term,
	}

	if err := h.repository.CreateGrade(grade); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم تسجيل الدرجة بنجاح", grade)
}

func (h *Handler) UpdateGrade(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الدرجة غير صالح")
		return
	}

	var req struct {
		Score    *float64 `json:"score" validate:"omitempty,gte=0"`
		MaxScore *float64 `json:"maxScore" validate:"omitempty,gt=0"`
		Term     *string  `json:"term"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	grade, err := h.repository.GetGradeByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "الدرجة غير موجودة")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.Score != nil {
		grade.Score = *req.Score
	}
	if req.MaxScore != nil {
		grade.MaxScore = *req.MaxScore
	}
	if req.Term != nil {
		grade.Term = *req.Term
	}

	if grade.Score > grade.MaxScore {
		h.errorResponse(w, r, "الدرجة لا يمكن أن تتجاوز الدرجة العظمى")
		return
	}

	if err := h.repository.UpdateGrade(grade); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "فشل تحديث الدرجة، يرجى المحاولة مرة أخرى")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "تم تحديث الدرجة بنجاح", grade)
}

func (h *Handler) DeleteGrade(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الدرجة غير صالح")
		return
	}

	if err := h.repository.DeleteGrade(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف الدرجة بنجاح", nil)
}
