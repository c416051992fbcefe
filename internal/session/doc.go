// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the page-state machine of the theatre.
//
// Every operation of [Controller] has the shape
//
//	(current models.Session, input) -> (next models.Session, models.View, error)
//
// and keeps no state between calls: the caller owns the session value and
// carries it from one request to the next (see the token and cookie codecs
// of the HTTP handler).
//
// Pages and transitions:
//
//	Anonymous, Login     --valid credentials-->      Authenticated, CreatePiece
//	Anonymous, Login     --invalid credentials-->    Anonymous, Login (error)
//	Anonymous, Login     --request registration-->   Anonymous, Register
//	Anonymous, Register  --cancel registration-->    Anonymous, Login
//	Anonymous, Register  --valid account data-->     Anonymous, Login (success)
//	Anonymous, Register  --colliding data-->         Anonymous, Register (error)
//	Authenticated, any   --menu item-->              Authenticated, selected page
//	any                  --logout-->                 Anonymous, Login
//
// A refused operation returns the session unchanged together with a View
// that carries the error message and one of the guard errors of this
// package. Storage faults are returned as plain errors with the session
// unchanged.
package session
