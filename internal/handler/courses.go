package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (h *Handler) GetAllCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.repository.GetAllCourses()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب قائمة الدورات بنجاح", courses)
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name" validate:"required"`
		Description string  `json:"description"`
		TeacherID   *int64  `json:"teacherID"`
		Price       float64 `json:"price" validate:"gte=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	course := &domain.Course{
		Name:        req.Name,
		Description: req.Description,
		TeacherID:   req.TeacherID,
		Price:       req.Price,
	}

	if err := h.repository.CreateCourse(course); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم إنشاء الدورة بنجاح", course)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الدورة غير صالح")
		return
	}

	if err := h.repository.DeleteCourse(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف الدورة بنجاح", nil)
}

func (h *Handler) GetAllSubscriptions(w http.ResponseWriter, r *http.Request) {
	subscriptions, err := h.repository.GetAllSubscriptions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب قائمة الاشتراكات بنجاح", subscriptions)
}

func (h *Handler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID int64  `json:"studentID" validate:"required"`
		CourseID  int64  `json:"courseID" validate:"required"`
		StartDate string `json:"startDate" validate:"required"`
		EndDate   string `json:"endDate" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		h.errorResponse(w, r, "صيغة تاريخ البداية غير صالحة")
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		h.errorResponse(w, r, "صيغة تاريخ النهاية غير صالحة")
		return
	}
	if !endDate.After(startDate) {
		h.errorResponse(w, r, "تاريخ النهاية يجب أن يكون بعد تاريخ البداية")
		return
	}

	subscription := &domain.Subscription{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    domain.SubscriptionActive,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := h.repository.CreateSubscription(subscription); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم إنشاء الاشتراك بنجاح", subscription)
}

func (h *Handler) UpdateSubscriptionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الاشتراك غير صالح")
		return
	}

	var req struct {
		Status string `json:"status" validate:"required,oneof=active expired cancelled"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.UpdateSubscriptionStatus(id, domain.SubscriptionStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "الاشتراك غير موجود")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "تم تحديث حالة الاشتراك بنجاح", nil)
}
