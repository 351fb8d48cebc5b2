package validators

import "context"

// Validator checks a decoded request shape against its declarative rule set.
type Validator interface {
	// Validate returns nil when obj satisfies every rule for its type,
	// a [*ValidationError] listing all violations otherwise, or
	// [ErrUnsupportedType] when obj has no rule set.
	Validate(ctx context.Context, obj any) error
}
