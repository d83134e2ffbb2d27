package response

import (
	"errors"
	"net/http"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/attendance"
	"github.com/wealthzoneai/hrm-core-go/internal/domain/leave"
	"github.com/wealthzoneai/hrm-core-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Leave validation errors
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrInvalidLeaveType),
		errors.Is(err, leave.ErrMissingReason),
		errors.Is(err, leave.ErrMissingRequiredDocument),
		errors.Is(err, leave.ErrMissingRemarks),
		errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)

	// Leave conflict errors
	case errors.Is(err, leave.ErrOverlappingLeaveRequest):
		Conflict(w, "Leave request overlaps an existing active request")
	case errors.Is(err, leave.ErrInvalidStateTransition):
		Conflict(w, "Leave request was already processed")

	// Leave authorization errors
	case errors.Is(err, leave.ErrUnauthorizedTransition),
		errors.Is(err, leave.ErrUnauthorizedCancellation),
		errors.Is(err, leave.ErrUnauthorizedSubmission):
		Forbidden(w, err.Error())

	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrPunchNotFound):
		NotFound(w, "No attendance punch found")
	case errors.Is(err, attendance.ErrInvalidPeriod):
		BadRequest(w, "Period must be in YYYY-MM format", nil)
	case errors.Is(err, attendance.ErrInvalidPunchOrder):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
