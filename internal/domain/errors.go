package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// tour does not exist. Handlers should map this to HTTP 404.
//
// Note the asymmetry with days and activities: a missing day or activity ID
// inside an existing tour is a navigational no-op (the tour is returned
// unchanged), never an error. Only a missing tour is reported.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. unknown enum value, malformed date). Handlers should map this to
// HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrBusy is returned when a suspending operation (AI generation, document
// export) is started while a previous invocation of the same operation is
// still in flight. The new call is rejected, not queued. Handlers should
// map this to HTTP 409 Conflict.
var ErrBusy = errors.New("operation already in progress")
