package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (h *Handler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	classParam := r.URL.Query().Get("class_id")
	classID, err := strconv.ParseInt(classParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "معرف الفصل غير صالح")
		return
	}

	dateParam := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		h.errorResponse(w, r, "صيغة التاريخ غير صالحة")
		return
	}

	records, err := h.repository.GetAttendanceByClassAndDate(classID, date)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب سجل الحضور بنجاح", records)
}

func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID int64  `json:"studentID" validate:"required"`
		ClassID   int64  `json:"classID" validate:"required"`
		Date      string `json:"date" validate:"required"`
		Status    string `json:"status" validate:"required,oneof=present absent late excused"`
		Note      string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		h.errorResponse(w, r, "صيغة التاريخ غير صالحة")
		return
	}

	record := &domain.AttendanceRecord{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Date:      date,
		Status:    domain.AttendanceStatus(req.Status),
		Note:      req.Note,
	}

	if err := h.repository.UpsertAttendance(record); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم تسجيل الحضور بنجاح", record)
}

func (h *Handler) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف السجل غير صالح")
		return
	}

	if err := h.repository.DeleteAttendance(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف سجل الحضور بنجاح", nil)
}
