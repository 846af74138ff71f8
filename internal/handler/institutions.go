package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/madrasa-dev/school-manager/backend/internal/domain"
)

func (h *Handler) GetAllInstitutions(w http.ResponseWriter, r *http.Request) {
	institutions, err := h.repository.GetAllInstitutions()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم جلب قائمة المؤسسات بنجاح", institutions)
}

func (h *Handler) CreateInstitution(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Phone   string `json:"phone" validate:"required"`
		Address string `json:"address" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	institution := &domain.Institution{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := h.repository.CreateInstitution(institution); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم إنشاء المؤسسة بنجاح", institution)
}

func (h *Handler) UpdateInstitution(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف المؤسسة غير صالح")
		return
	}

	var req struct {
		Name    *string `json:"name"`
		Email   *string `json:"email" validate:"omitempty,email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	institution, err := h.repository.GetInstitutionByID(id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "المؤسسة غير موجودة")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if req.Name != nil {
		institution.Name = *req.Name
	}
	if req.Email != nil {
		institution.Email = *req.Email
	}
	if req.Phone != nil {
		institution.Phone = *req.Phone
	}
	if req.Address != nil {
		institution.Address = *req.Address
	}

	if err := h.repository.UpdateInstitution(institution); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "فشل تحديث بيانات المؤسسة، يرجى المحاولة مرة أخرى")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "تم تحديث بيانات المؤسسة بنجاح", institution)
}

func (h *Handler) DeleteInstitution(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		h.errorResponse(w, r, "معرف المؤسسة غير صالح")
		return
	}

	if err := h.repository.DeleteInstitution(id); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "تم حذف المؤسسة بنجاح", nil)
}
