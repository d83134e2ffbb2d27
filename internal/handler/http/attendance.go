package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/attendance"
	"github.com/wealthzoneai/hrm-core-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	RecordPunch(w http.ResponseWriter, r *http.Request)
	GetMySummary(w http.ResponseWriter, r *http.Request)
	GetMonthlyRollup(w http.ResponseWriter, r *http.Request)
	GetLiveShift(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// RecordPunch implements AttendanceHandler.
func (a *AttendanceHandlerImpl) RecordPunch(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RecordPunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := a.attendanceService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", attendance.ToPunchResponse(created))
}

// GetMySummary implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMySummary(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actorFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	period, err := attendance.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := a.attendanceService.Summary(r.Context(), actorID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToSummaryResponse(summary))
}

// GetMonthlyRollup implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetMonthlyRollup(w http.ResponseWriter, r *http.Request) {
	period, err := attendance.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rollup, err := a.attendanceService.MonthlyRollup(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make(map[string]attendance.SummaryResponse, len(rollup))
	for employeeID, summary := range rollup {
		out[employeeID] = attendance.ToSummaryResponse(summary)
	}

	response.Success(w, out)
}

// GetLiveShift implements AttendanceHandler.
func (a *AttendanceHandlerImpl) GetLiveShift(w http.ResponseWriter, r *http.Request) {
	actorID, _, ok := actorFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	punch, duration, err := a.attendanceService.LiveShift(r.Context(), actorID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToShiftDurationResponse(punch, duration))
}
