package user

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/coverly/intake/internal/broadcast"
	"github.com/coverly/intake/internal/middleware"
)

type EventController struct {
	broker broadcast.Broker
}

func NewEventController(broker broadcast.Broker) *EventController {
	return &EventController{broker: broker}
}

// Stream godoc
// @Summary Subscribe to comment notification events
// @Description Server-sent events stream. Events are named comment.created / comment.updated and are a refresh hint only; clients re-fetch authoritative state.
// @Tags Events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /events [get]
func (c *EventController) Stream(ctx *gin.Context) {
	sub := c.broker.Subscribe()
	defer c.broker.Unsubscribe(sub)

	actor := middleware.CurrentUser(ctx)
	log.Info().Str("subscriber", sub.ID).Uint("userID", actor.ID).Msg("Event stream opened")

	ctx.Writer.Header().Set("Content-Type", "text/event-stream")
	ctx.Writer.Header().Set("Cache-Control", "no-cache")
	ctx.Writer.Header().Set("Connection", "keep-alive")

	ctx.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-sub.Ch:
			if !ok {
				return false
			}
			ctx.SSEvent(event.Name, event.Payload)
			return true
		case <-ctx.Request.Context().Done():
			return false
		}
	})
}
