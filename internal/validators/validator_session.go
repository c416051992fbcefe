// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-theatre-ai/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the login identifier.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a request.
	FieldPassword = "password"

	// FieldEmail targets the contact address.
	FieldEmail = "email"

	// FieldFirstName and FieldLastName target the parts of the display name.
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"

	// FieldPhone targets the contact phone number.
	FieldPhone = "phone"

	// FieldUserID targets the owner of a creation.
	FieldUserID = "user_id"
)

var registrationFields = []string{FieldUsername, FieldPassword, FieldEmail, FieldFirstName, FieldLastName, FieldPhone}

// SessionValidator implements [Validator] for the inputs of the session
// operations: registration forms and creations about to be stored. Login
// forms are not validated; an empty one is a credential mismatch.
//
// A string field counts as empty when it holds only whitespace. Theme, era
// and description of a creation are never checked.
type SessionValidator struct{}

// NewSessionValidator returns a [Validator] for session inputs.
func NewSessionValidator() Validator {
	return &SessionValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are both accepted. Unsupported types yield [ErrUnsupportedType].
func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegistrationRequest:
		return v.validateRegistration(ctx, value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(ctx, *value, fields...)

	case models.Creation:
		return v.validateCreation(ctx, value, fields...)
	case *models.Creation:
		return v.validateCreation(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SessionValidator) validateRegistration(_ context.Context, r models.RegistrationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = registrationFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = required(r.Username, ErrEmptyUsername)
		case FieldPassword:
			err = required(r.Password, ErrEmptyPassword)
		case FieldEmail:
			err = required(r.Email, ErrEmptyEmail)
		case FieldFirstName:
			err = required(r.FirstName, ErrEmptyFirstName)
		case FieldLastName:
			err = required(r.LastName, ErrEmptyLastName)
		case FieldPhone:
			err = required(r.Phone, ErrEmptyPhone)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *SessionValidator) validateCreation(_ context.Context, c models.Creation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if c.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func required(value string, err error) error {
	if strings.TrimSpace(value) == "" {
		return err
	}
	return nil
}
