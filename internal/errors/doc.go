// Package errors provides the coded error type used across the crusade-api project.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFound("list not found").
//	    WithMeta("list_id", listID)
//
// Wrapping keeps the original code unless a new one is given:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get list")
//	}
//
// Domain codes:
//   - SlotOccupied: a unit is placed into a slot that already holds one
//   - InvalidOption: an equipment operation names an option the unit does not offer
//   - FailedPrecondition: an unlock, benefit or settings precondition is not met
//
// Handlers turn any error into a JSON body and status with WriteHTTP.
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing records
//   - Include relevant IDs in metadata
//   - Wrap store errors with context
//
// Engine and orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors before touching state
//
// Handler layer:
//   - Convert errors with WriteHTTP
//   - Log internal errors for debugging
package errors
