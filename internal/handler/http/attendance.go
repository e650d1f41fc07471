package http

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/attendance"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/auth"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/domain/user"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	RequestLeave(w http.ResponseWriter, r *http.Request)
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// caller pulls the authenticated identity out of the verified token.
func caller(r *http.Request) (id string, isAdmin bool, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false, auth.ErrInvalidToken
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", false, auth.ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	return id, role == string(user.RoleAdmin), nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Generate implements AttendanceHandler.
func (h *attendanceHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	result, err := h.attendanceService.ReconcileSchedule(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance schedule generated", result)
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	callerID, _, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecordID = chi.URLParam(r, "attendanceId")
	req.CallerID = callerID
	req.IPAddress = clientIP(r)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-in recorded", result)
}

// RequestLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) RequestLeave(w http.ResponseWriter, r *http.Request) {
	callerID, _, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.RequestLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecordID = chi.URLParam(r, "attendanceId")
	req.CallerID = callerID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.RequestLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave requested", result)
}

// ListLeaveRequests implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListLeaveRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ApproveLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ApproveLeave(r.Context(), chi.URLParam(r, "attendanceId"), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave approved", result)
}

// RejectLeave implements AttendanceHandler.
func (h *attendanceHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.RejectLeave(r.Context(), chi.URLParam(r, "attendanceId"), adminID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave rejected", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	result, err := h.attendanceService.List(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	result, err := h.attendanceService.History(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	callerID, isAdmin, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "attendanceId"), callerID, isAdmin)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := caller(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "attendanceId")
	req.AdminID = adminID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Delete(r.Context(), chi.URLParam(r, "attendanceId")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}
