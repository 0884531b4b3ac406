package services

import "errors"

// ErrValidation marks input rejected before any mutation: bad quantities,
// empty item names, unparseable prices, missing dealer notes. The store is
// untouched when a wrapped ErrValidation is returned.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials is the generic login failure. Callers must not
// learn whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")
