// Package broadcast is the notification side channel: comment events fan out
// to subscribed browsers as a cache-invalidation hint, never as the source
// of truth. Delivery is best-effort and at-most-once; the write path never
// depends on it.
package broadcast

import (
	"time"

	"github.com/coverly/intake/internal/model"
)

const (
	ChannelCommentAdded   = "comment-added"
	ChannelCommentUpdated = "comment-updated"

	EventCommentCreated = "comment.created"
	EventCommentUpdated = "comment.updated"
)

type EventUser struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type EventComment struct {
	ID        uint      `json:"id"`
	Body      string    `json:"body"`
	CreatedAt string    `json:"created_at"`
	User      EventUser `json:"user"`
}

// Payload is the wire shape: {"comment": {...}} with the author attached.
type Payload struct {
	Comment EventComment `json:"comment"`
}

type Event struct {
	Channel string  `json:"channel"`
	Name    string  `json:"name"`
	Payload Payload `json:"payload"`
}

// Broker is the publish/subscribe seam the comment service calls. The core
// never implements a transport itself.
type Broker interface {
	Publish(event Event)
	Subscribe() *Subscriber
	Unsubscribe(sub *Subscriber)
}

// NewCommentEvent builds the event for a persisted comment with its author
// already loaded.
func NewCommentEvent(channel, name string, comment *model.Comment) Event {
	return Event{
		Channel: channel,
		Name:    name,
		Payload: Payload{
			Comment: EventComment{
				ID:        comment.ID,
				Body:      comment.Body,
				CreatedAt: comment.CreatedAt.Format(time.DateTime),
				User: EventUser{
					ID:   comment.User.ID,
					Name: comment.User.Name,
					Role: string(comment.User.Role),
				},
			},
		},
	}
}
