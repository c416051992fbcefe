// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// theatre session controller, HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are placed on a
// View or written into HTTP response bodies and log entries to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the API and the terminal client.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is surfaced on the Login page when the supplied
	// username/password combination does not match any user.
	MsgInvalidLoginPassword = "Incorrect username or password"

	// MsgAccountCreated is surfaced on the Login page after a successful
	// registration.
	MsgAccountCreated = "Account created successfully. Please log in."

	// MsgUsernameTaken is surfaced on the Register page when the requested
	// username already belongs to another user.
	MsgUsernameTaken = "This username is already taken"

	// MsgEmailTaken is surfaced on the Register page when the requested
	// email already belongs to another user.
	MsgEmailTaken = "This email is already registered"

	// MsgRegistrationFieldsRequired is surfaced on the Register page when a
	// required field is empty.
	MsgRegistrationFieldsRequired = "All fields are required"

	// MsgCreationSaved is surfaced on the CreatePiece page after a creation
	// has been stored.
	MsgCreationSaved = "Your creation has been saved to the database!"

	// MsgNoCreations is the empty-state notice of the History page.
	MsgNoCreations = "No creations in the history yet."

	// MsgWelcome is the greeting shown on the menu pages; formatted with the
	// user's display name.
	MsgWelcome = "Welcome, %s!"

	// MsgLoggedOut is surfaced on the Login page after logout.
	MsgLoggedOut = "You have been logged out."

	// MsgNotAuthenticated is surfaced when a menu page is requested without
	// a logged-in user.
	MsgNotAuthenticated = "Please log in first"

	// MsgAlreadyAuthenticated is surfaced when login or registration is
	// attempted while a user is logged in.
	MsgAlreadyAuthenticated = "You are already logged in"

	// MsgUnknownPage is surfaced when navigation names a page outside the menu.
	MsgUnknownPage = "Unknown page"

	// MsgWrongPage is surfaced when a creation is submitted from a page other
	// than CreatePiece.
	MsgWrongPage = "Creations can only be submitted from the creation page"

	// MsgLoginWrongPage is surfaced when credentials are submitted from the
	// registration page.
	MsgLoginWrongPage = "Log in from the login page"

	// MsgRegisterWrongPage is surfaced when a registration form is submitted
	// without first opening the registration page.
	MsgRegisterWrongPage = "Open the registration page to create an account"

	// MsgSessionExpired is surfaced on the Login page when the carried
	// session could not be verified.
	MsgSessionExpired = "Your session has expired. Please log in again."

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
