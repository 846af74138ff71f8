package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
	"github.com/madrasa-dev/school-manager/backend/internal/timetable"
	"github.com/madrasa-dev/school-manager/backend/internal/utils"
	"github.com/redis/go-redis/v9"
)

const slotCacheKey = "timetable:slots:all"

// slotsSnapshot returns every slot, going through the redis cache first. The
// grid is recomputed on every request while the slot rows change rarely, so
// the snapshot is what gets cached, never the computed geometry.
func (h *Handler) slotsSnapshot(ctx context.Context) ([]*domain.TimetableSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	cached, err := h.redisClient.Get(ctx, slotCacheKey).Result()
	if err == nil {
		slots := make([]*domain.TimetableSlot, 0)
		if err := json.Unmarshal([]byte(cached), &slots); err == nil {
			return slots, nil
		}
		// fall through to the database on a corrupt cache entry
	} else if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	slots, err := h.repository.GetAllSlots()
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return nil, err
	}

	if err := h.redisClient.Set(ctx, slotCacheKey, data, time.Duration(h.config.Redis.SlotCacheExpiration)*time.Second).Err(); err != nil {
		return nil, err
	}

	return slots, nil
}

func (h *Handler) invalidateSlotCache(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	return h.redisClient.Del(ctx, slotCacheKey).Err()
}

func (h *Handler) gridConfig() (timetable.GridConfig, error) {
	weekend := make([]domain.Day, 0, len(h.config.Timetable.WeekendDays))
	for _, key := range h.config.Timetable.WeekendDays {
		day, err := domain.ParseDay(key)
		if err != nil {
			return timetable.GridConfig{}, err
		}
		weekend = append(weekend, day)
	}

	return timetable.GridConfig{
		StartHour:       h.config.Timetable.StartHour,
		VisibleHours:    h.config.Timetable.VisibleHours,
		HourUnit:        h.config.Timetable.HourUnitRem,
		MinDetailHeight: h.config.Timetable.MinDetailRem,
		WeekendDays:     weekend,
	}, nil
}

func (h *Handler) GetAllSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotsSnapshot(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب جميع الحصص بنجاح", slots)
}

func (h *Handler) GetTeacherTimetable(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	if myInfo.TeacherID == nil {
		h.errorResponse(w, r, "الحساب غير مرتبط بسجل معلم")
		return
	}

	slots, err := h.repository.GetSlotsByTeacher(*myInfo.TeacherID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب جدول المعلم بنجاح", slots)
}

func (h *Handler) GetClassTimetable(w http.ResponseWriter, r *http.Request) {
	classID, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الفصل غير صالح")
		return
	}

	slots, err := h.repository.GetSlotsByClass(classID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب جدول الفصل بنجاح", slots)
}

// queryID reads an optional int64 query parameter; absence yields zero, which
// downstream means "no constraint".
func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

// GetTimetableGrid composes the full weekly view: the slot snapshot filtered
// by class and teacher, laid out as positioned blocks, plus the week window
// label and the current-time indicator. The indicator only applies to the
// week actually containing now, so a shifted week omits it.
func (h *Handler) GetTimetableGrid(w http.ResponseWriter, r *http.Request) {
	classID, err := queryID(r, "class_id")
	if err != nil {
		h.errorResponse(w, r, "معرف الفصل غير صالح")
		return
	}
	teacherID, err := queryID(r, "teacher_id")
	if err != nil {
		h.errorResponse(w, r, "معرف المعلم غير صالح")
		return
	}

	weekOffset := 0
	if raw := r.URL.Query().Get("week"); raw != "" {
		weekOffset, err = strconv.Atoi(raw)
		if err != nil {
			h.errorResponse(w, r, "إزاحة الأسبوع غير صالحة")
			return
		}
	}

	cfg, err := h.gridConfig()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	slots, err := h.slotsSnapshot(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	filtered := timetable.FilterSlots(slots, classID, teacherID)
	grid := timetable.BuildGrid(filtered, cfg)

	now := time.Now()
	dates := timetable.ShiftWeek(timetable.CurrentWeekDates(now), weekOffset)

	resp := struct {
		Grid            *timetable.Grid `json:"grid"`
		WeekDates       []time.Time     `json:"weekDates"`
		WeekLabel       string          `json:"weekLabel"`
		IndicatorOffset *float64        `json:"indicatorOffset"`
	}{
		Grid:      grid,
		WeekDates: dates,
		WeekLabel: timetable.FormatRange(dates),
	}

	if weekOffset == 0 {
		if offset, ok := timetable.CurrentTimeOffset(now, cfg.StartHour, cfg.VisibleHours); ok {
			resp.IndicatorOffset = &offset
		}
	}

	h.successResponse(w, r, "تم جلب شبكة الجدول بنجاح", resp)
}

func (h *Handler) GetWeekWindow(w http.ResponseWriter, r *http.Request) {
	weekOffset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		var err error
		weekOffset, err = strconv.Atoi(raw)
		if err != nil {
			h.errorResponse(w, r, "إزاحة الأسبوع غير صالحة")
			return
		}
	}

	dates := timetable.ShiftWeek(timetable.CurrentWeekDates(time.Now()), weekOffset)

	resp := struct {
		Dates []time.Time `json:"dates"`
		Label string      `json:"label"`
	}{
		Dates: dates,
		Label: timetable.FormatRange(dates),
	}

	h.successResponse(w, r, "تم جلب نطاق الأسبوع بنجاح", resp)
}

func (h *Handler) AddSlot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ClassID   int64  `json:"class_id" validate:"required"`
		TeacherID int64  `json:"teacher_id" validate:"required"`
		Day       string `json:"day" validate:"required"`
		StartTime string `json:"start_time" validate:"required"`
		EndTime   string `json:"end_time" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	slot := &domain.TimetableSlot{
		ClassID:   req.ClassID,
		TeacherID: req.TeacherID,
		Day:       domain.Day(req.Day),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := utils.ValidateSlotTime(slot); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateSlot(slot); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.invalidateSlotCache(r.Context()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم إضافة الحصة بنجاح", slot)
}

func (h *Handler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف الحصة غير صالح")
		return
	}

	if _, err := h.repository.GetSlotByID(id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "الحصة غير موجودة")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.DeleteSlot(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.invalidateSlotCache(r.Context()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف الحصة بنجاح", nil)
}
