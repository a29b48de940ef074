package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrSymbolRequired indicates that a session was saved without a symbol.
	ErrSymbolRequired = errors.New("symbol is required")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidStep indicates a step ID outside the fixed 1..7 catalog.
	ErrInvalidStep = errors.New("invalid checklist step")

	// ErrInvalidStatus indicates a step status outside the pending/pass/warn/fail set.
	ErrInvalidStatus = errors.New("invalid step status")

	// ErrInvalidRule indicates a no-trade rule outside the fixed catalog.
	ErrInvalidRule = errors.New("invalid no-trade rule")

	// ErrInvalidDirection indicates a trade direction other than Long or Short.
	ErrInvalidDirection = errors.New("invalid trade direction")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToLoadPortfolio = errors.New("failed to load portfolio")
	ErrFailedToSavePortfolio = errors.New("failed to save portfolio")
	ErrFailedToLoadJournal   = errors.New("failed to load journal")
	ErrFailedToSaveJournal   = errors.New("failed to save journal")
)
