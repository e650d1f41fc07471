package http

import (
	"encoding/json"
	"net/http"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/announcement"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AnnouncementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListActive(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &announcementHandlerImpl{
		announcementService: announcementService,
	}
}

// Create implements AnnouncementHandler.
func (h *announcementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req announcement.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CreatedBy = adminID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement created", result)
}

// ListActive implements AnnouncementHandler.
func (h *announcementHandlerImpl) ListActive(w http.ResponseWriter, r *http.Request) {
	result, err := h.announcementService.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AnnouncementHandler.
func (h *announcementHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req announcement.UpdateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "announcementId")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.announcementService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement updated", result)
}

// Delete implements AnnouncementHandler.
func (h *announcementHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.announcementService.Delete(r.Context(), chi.URLParam(r, "announcementId")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Announcement deleted", nil)
}
