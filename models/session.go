package models

// Session is the per-interaction state of one user of the theatre: who is
// logged in, if anyone, and which page is shown. It is never persisted on
// the server; every operation takes the current value and returns the next.
type Session struct {
	// UserID is the authenticated user. Zero means anonymous.
	UserID int64 `json:"user_id,omitempty"`

	// Username and DisplayName describe the authenticated user.
	// Both are empty for anonymous sessions.
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty"`

	// Page is the page the session rests on.
	Page Page `json:"page"`
}

// NewSession returns the initial session: anonymous, on the Login page.
func NewSession() Session {
	return Session{Page: PageLogin}
}

// SessionFor returns an authenticated session for user resting on page.
func SessionFor(user User, page Page) Session {
	return Session{
		UserID:      user.UserID,
		Username:    user.Username,
		DisplayName: user.DisplayName(),
		Page:        page,
	}
}

// Authenticated reports whether a user is logged in.
func (s Session) Authenticated() bool {
	return s.UserID > 0
}

// Normalized returns s moved to a page that is legal for its auth state.
// Anonymous sessions rest on Login or Register only; authenticated sessions
// rest on menu pages only. Anything else falls back to the first page of
// the state.
func (s Session) Normalized() Session {
	if !s.Authenticated() {
		if s.Page == PageRegister {
			return Session{Page: PageRegister}
		}
		return NewSession()
	}

	if !s.Page.IsMenu() {
		s.Page = PageCreatePiece
	}
	return s
}
