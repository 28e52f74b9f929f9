package live

import (
	"fmt"
	"math"
)

// EventType is the kind of platform event a browser reports.
type EventType string

const (
	EventIntersect EventType = "intersect"
	EventNavigate  EventType = "navigate"
	EventOverlay   EventType = "overlay"
	EventScroll    EventType = "scroll"
)

// Event is a platform event posted to /live/events.
type Event struct {
	SessionID string    `json:"sessionId"`
	Type      EventType `json:"type"`
	ID        string    `json:"id,omitempty"`
	Ratio     float64   `json:"ratio,omitempty"`
	Section   string    `json:"section,omitempty"`
	Open      bool      `json:"open,omitempty"`
	Y         int       `json:"y,omitempty"`
}

// Validate checks the fields required by the event type.
func (e Event) Validate() error {
	if e.SessionID == "" {
		return fmt.Errorf("sessionId is required")
	}
	switch e.Type {
	case EventIntersect:
		if e.ID == "" {
			return fmt.Errorf("intersect event requires id")
		}
		if math.IsNaN(e.Ratio) || e.Ratio < 0 || e.Ratio > 1 {
			return fmt.Errorf("ratio must be within [0, 1]")
		}
	case EventNavigate:
		if e.Section == "" {
			return fmt.Errorf("navigate event requires section")
		}
	case EventOverlay, EventScroll:
	default:
		return fmt.Errorf("unknown event type %q", e.Type)
	}
	return nil
}

// Command names streamed to the browser.
const (
	CommandConnected = "connected"
	CommandReveal    = "reveal"
	CommandOverlay   = "overlay"
	CommandScroll    = "scroll"
	CommandNavbar    = "navbar"
	CommandReload    = "reload"
)

// Command is one server-sent event.
type Command struct {
	Name string
	Data any
}

type ConnectedData struct {
	SessionID string   `json:"sessionId"`
	Revealed  []string `json:"revealed"`
}

type RevealData struct {
	ID string `json:"id"`
}

type OverlayData struct {
	Open bool `json:"open"`
}

type NavbarData struct {
	Scrolled bool `json:"scrolled"`
}
