package models

// MessageKind classifies a user-facing message.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
	MessageInfo    MessageKind = "info"
)

// Message is a human-readable notice surfaced on the current page.
type Message struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

// View is everything the presentation boundary needs to render one page.
// It is produced by every session operation and returned by every
// session endpoint.
type View struct {
	// Page is the page the session rests on after the operation.
	Page Page `json:"page"`

	// Authenticated reports whether a user is logged in.
	Authenticated bool `json:"authenticated"`

	// Username and DisplayName are empty for anonymous sessions.
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty"`

	// Message is the success or error notice of the operation, if any.
	Message *Message `json:"message,omitempty"`

	// Creations is filled on the History page only, oldest first.
	Creations []HistoryEntry `json:"creations,omitempty"`

	// EmptyNotice is set on the History page when the user owns no creations.
	EmptyNotice string `json:"empty_notice,omitempty"`

	// Gallery is filled on the Gallery page only.
	Gallery []GalleryPiece `json:"gallery,omitempty"`

	// MenuPages lists the pages selectable from the menu. Empty while anonymous.
	MenuPages []Page `json:"menu_pages,omitempty"`
}
