package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")

	// validation errors, caught before any chain call
	ErrInvalidAmount = errors.New("invalid or negative amount")
	ErrMissingField  = errors.New("required field is missing")

	// listing resolution
	ErrNoActiveListing = errors.New("no valid listing found for this token")
	ErrNotTokenOwner   = errors.New("caller does not own this token")

	// approval gating
	ErrApprovalReadFailed = errors.New("failed to read operator approval")
	ErrApprovalTxRejected = errors.New("approval transaction rejected by signer")
	ErrApprovalTxReverted = errors.New("approval transaction reverted on chain")

	// transaction submission
	ErrListingCreationFailed = errors.New("listing creation failed")
	ErrBuyTxFailed           = errors.New("buy transaction failed")
	ErrBidTxFailed           = errors.New("bid transaction failed")

	// history, non fatal: degrades to an empty timeline
	ErrEventQueryFailed = errors.New("event query failed")
)
