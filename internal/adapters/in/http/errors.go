package http

import (
	"errors"
	"net/http"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func errorResponse(ctx echo.Context, err error) error {
	status := statusForError(err)
	return ctx.JSON(status, ErrorBody{
		Code:    status,
		Message: err.Error(),
	})
}

// statusForError maps domain and application errors to HTTP status codes.
// Unknown errors become 500 so internals never leak a misleading 4xx.
func statusForError(err error) int {
	var (
		notFound      *errs.ObjectNotFoundError
		required      *errs.ValueIsRequiredError
		invalid       *errs.ValueIsInvalidError
		outOfRange    *errs.ValueIsOutOfRangeError
		invalidState  *errs.InvalidStateError
		badTransition *order.InvalidTransitionError
		processor     *ports.ProcessorError
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound

	case errors.As(err, &required),
		errors.As(err, &invalid),
		errors.As(err, &outOfRange):
		return http.StatusBadRequest

	case errors.As(err, &invalidState),
		errors.As(err, &badTransition),
		errors.Is(err, commands.ErrOrderNotBiddable),
		errors.Is(err, commands.ErrBidAlreadyPlaced),
		errors.Is(err, commands.ErrInsufficientBalance),
		errors.Is(err, commands.ErrPayoutNotProcessable),
		errors.Is(err, commands.ErrOrderNotCompleted),
		errors.Is(err, commands.ErrDeliverableMissing):
		return http.StatusConflict

	case errors.Is(err, commands.ErrOrderOwnershipMismatch),
		errors.Is(err, commands.ErrWorkerNotEligible):
		return http.StatusForbidden

	case errors.As(err, &processor):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
