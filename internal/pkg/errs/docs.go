// Package errs provides the error taxonomy shared by the freight core.
//
// Callers match on the sentinels with errors.Is:
//   - ErrObjectNotFound: a referenced load, offer, profile or company is absent
//   - ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: validation failures
//   - ErrPermissionDenied: the access resolver rejected the requester
//   - ErrConflict: duplicate offer thread, response on a terminal offer, stale version
//
// Each typed error carries the offending parameter, an optional cause, and
// unwraps to its sentinel.
package errs
