package models

// GalleryPiece is one entry of the static gallery catalog.
// The catalog is identical for every user and every session.
type GalleryPiece struct {
	// Title is the name of the piece.
	Title string `json:"title" yaml:"title"`

	// Summary is a one-paragraph synopsis.
	Summary string `json:"summary" yaml:"summary"`

	// Link is the public address of the document.
	Link string `json:"link" yaml:"link"`

	// ObjectKey, when set, names the document inside the configured object
	// storage bucket. Link is then replaced by a presigned download address.
	ObjectKey string `json:"-" yaml:"object_key,omitempty"`
}
