package service

import "errors"

// ErrNotFound is the uniform outcome for an invalid identifier, a missing
// row, and an ownership mismatch. Collapsing these deliberately keeps
// "doesn't exist" indistinguishable from "exists but isn't yours".
var ErrNotFound = errors.New("recipe not found")

// ErrInvalidCredentials is returned for any sign-in failure. It never
// distinguishes an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when signing up with an email that already has
// an account.
var ErrEmailTaken = errors.New("an account with this email already exists")
