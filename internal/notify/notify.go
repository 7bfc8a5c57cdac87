package notify

// RenderedMessage is a digest ready for delivery: a subject line, an
// HTML body and a plain text fallback.
type RenderedMessage struct {
	Subject string
	HTML    string
	Text    string
}

// Renderer turns an analysis result into a deliverable message.
type Renderer interface {
	Render(data DigestData) (*RenderedMessage, error)
}

// Sender delivers a rendered message.
type Sender interface {
	Send(msg *RenderedMessage) error
}
