package http

import (
	"fmt"
	"net/http"
	"sync"

	"workorders/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// StreamEvents handles GET /api/v1/events?user_id=... - a long-lived
// event-stream connection. Each event is written as one `data:` frame and
// flushed immediately; the stream stays open until the client disconnects.
func (s *Server) StreamEvents(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.QueryParam("user_id"))
	if err != nil {
		return badRequest(ctx, "Invalid user_id: "+err.Error())
	}

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	// The push callback runs on publisher goroutines while this handler
	// blocks below; the mutex keeps frames from interleaving with the
	// final teardown.
	var writeMu sync.Mutex
	nonce := kernel.NewUUID().String()

	s.events.Register(userID, nonce, func(payload []byte) error {
		writeMu.Lock()
		defer writeMu.Unlock()

		if _, err := fmt.Fprintf(response, "data: %s\n\n", payload); err != nil {
			return err
		}
		response.Flush()
		return nil
	})
	defer s.events.Unregister(userID, nonce)

	<-ctx.Request().Context().Done()
	return nil
}
