package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func Test_statusForError(t *testing.T) {
	_, transitionErr := order.Pending.Transition(order.Paid)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"object not found", errs.NewObjectNotFoundError("order", "abc"), http.StatusNotFound},
		{"value required", errs.NewValueIsRequiredError("reason"), http.StatusBadRequest},
		{"value invalid", errs.NewValueIsInvalidError("amount"), http.StatusBadRequest},
		{"invalid state", errs.NewInvalidStateError("payout request", "completed", "rejected"), http.StatusConflict},
		{"invalid transition", transitionErr, http.StatusConflict},
		{"order not biddable", commands.ErrOrderNotBiddable, http.StatusConflict},
		{"bid already placed", commands.ErrBidAlreadyPlaced, http.StatusConflict},
		{"insufficient balance", commands.ErrInsufficientBalance, http.StatusConflict},
		{"payout not processable", commands.ErrPayoutNotProcessable, http.StatusConflict},
		{"order not completed", commands.ErrOrderNotCompleted, http.StatusConflict},
		{"deliverable missing", commands.ErrDeliverableMissing, http.StatusConflict},
		{"ownership mismatch", commands.ErrOrderOwnershipMismatch, http.StatusForbidden},
		{"worker not eligible", commands.ErrWorkerNotEligible, http.StatusForbidden},
		{"processor failure", &ports.ProcessorError{StatusCode: 503, Message: "down"}, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func Test_statusForError_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", commands.ErrInsufficientBalance)
	assert.Equal(t, http.StatusConflict, statusForError(wrapped))

	joined := errors.Join(errs.NewObjectNotFoundError("bid", "x"), errors.New("context"))
	assert.Equal(t, http.StatusNotFound, statusForError(joined))
}
