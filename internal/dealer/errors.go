package dealer

import "errors"

// Error kinds raised by the core operations. Mutating operations validate
// every precondition before touching state, so a returned error guarantees
// zero partial change for that operation.
var (
	// ErrValidation marks a missing or invalid required field (VIN, license,
	// purchase eligibility, discount rule values).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a customer or vehicle reference that does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrOutOfStock marks a purchase attempted against zero stock.
	ErrOutOfStock = errors.New("out of stock")
	// ErrIntegrity marks invoice regeneration against a referent deleted
	// after the transaction was created.
	ErrIntegrity = errors.New("integrity error")
)
