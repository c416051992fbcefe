package models

// Page identifies the screen a session currently rests on.
// The value is transmitted as-is on the wire and in session carriers.
type Page string

const (
	// PageLogin is the entry page of every anonymous session.
	PageLogin Page = "Login"

	// PageRegister holds the new-account form.
	PageRegister Page = "Register"

	// PageCreatePiece holds the creation form. First page after login.
	PageCreatePiece Page = "CreatePiece"

	// PageGallery lists the static catalog of pieces.
	PageGallery Page = "Gallery"

	// PageHistory lists the creations of the authenticated user.
	PageHistory Page = "History"
)

// MenuPages are the only pages reachable through the menu of an
// authenticated session, in menu order.
var MenuPages = []Page{PageCreatePiece, PageGallery, PageHistory}

// IsMenu reports whether p can be selected from the menu.
func (p Page) IsMenu() bool {
	for _, m := range MenuPages {
		if p == m {
			return true
		}
	}
	return false
}

// IsKnown reports whether p is one of the five defined pages.
func (p Page) IsKnown() bool {
	return p == PageLogin || p == PageRegister || p.IsMenu()
}

// String implements [fmt.Stringer].
func (p Page) String() string {
	return string(p)
}
