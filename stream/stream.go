// Package stream provides a streaming API for HTML parsing.
package stream

import (
	"iter"

	"github.com/kestrelparse/html5go/encoding"
	"github.com/kestrelparse/html5go/tokenizer"
)

// EventType represents the type of streaming event.
type EventType int

// Event types for the streaming API.
const (
	StartTagEvent EventType = iota
	EndTagEvent
	TextEvent
	CommentEvent
	DoctypeEvent
)

// String returns the name of the event type.
func (e EventType) String() string {
	names := [...]string{"StartTag", "EndTag", "Text", "Comment", "Doctype"}
	if int(e) < len(names) {
		return names[e]
	}
	return "Unknown"
}

// Event represents a parsing event in the stream.
type Event struct {
	// Type is the event type.
	Type EventType

	// Name is the tag name (for start/end tags) or DOCTYPE name.
	Name string

	// Attrs contains attributes (for start tags only).
	Attrs map[string]string

	// Data is the text content (for text/comment events).
	Data string

	// For DOCTYPE events
	PublicID string
	SystemID string
}

// Stream returns a sequence of parsing events, produced synchronously as the
// caller pulls them via range. There is no background goroutine: tokenizing
// advances only as far as the consumer asks for, and stopping the range
// (break, or a yield returning false) simply stops tokenizing.
func Stream(html string, opts ...Option) iter.Seq[Event] {
	_ = newConfig(opts...) // encoding has no effect on string input, already decoded
	return func(yield func(Event) bool) {
		tok := tokenizer.New(html)

		for {
			token := tok.Next()

			var ev Event
			switch token.Type {
			case tokenizer.StartTag:
				ev = Event{
					Type:  StartTagEvent,
					Name:  token.Name,
					Attrs: attrsToMap(token.Attrs),
				}

			case tokenizer.EndTag:
				ev = Event{
					Type: EndTagEvent,
					Name: token.Name,
				}

			case tokenizer.Character:
				ev = Event{
					Type: TextEvent,
					Data: token.Data,
				}

			case tokenizer.Comment:
				ev = Event{
					Type: CommentEvent,
					Data: token.Data,
				}

			case tokenizer.DOCTYPE:
				ev = Event{
					Type:     DoctypeEvent,
					Name:     token.Name,
					PublicID: ptrToString(token.PublicID),
					SystemID: ptrToString(token.SystemID),
				}

			case tokenizer.EOF:
				return

			case tokenizer.Error:
				// Continue on errors (per HTML5 spec)
				continue

			default:
				continue
			}

			if !yield(ev) {
				return
			}
		}
	}
}

// StreamBytes returns a sequence of parsing events from byte input, after
// BOM-aware encoding detection.
func StreamBytes(html []byte, opts ...Option) iter.Seq[Event] {
	cfg := newConfig(opts...)
	decoded, _, err := encoding.Decode(html, cfg.encoding)
	if err != nil {
		return func(func(Event) bool) {}
	}
	return Stream(decoded, opts...)
}

func attrsToMap(attrs []tokenizer.Attr) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a.Value
	}
	return m
}

func ptrToString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
