// Package validators checks request bodies of domain writes before they
// reach the primary database.
//
// A [Validator] rejects malformed input with one of the field errors of this
// package. Rules that need stored state, such as profile ownership, are left
// to the services.
package validators

import "context"

// Validator checks one request body. fields optionally restricts the check
// to the named fields, as done for partial updates.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
