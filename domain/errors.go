package domain

import "errors"

var (
	// ErrInternalServerError will throw if any Internal Server Error happens
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item does not exist
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidChainId      = errors.New("invalid chain id")
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrNotImplemented      = errors.New("not implemented")

	// authorization failures
	ErrInvalidSignature = errors.New("invalid signature")
	ErrUsedSignature    = errors.New("used signature")
	ErrNotOwner         = errors.New("caller is not the owner")

	// listing validation failures
	ErrInvalidPayToken  = errors.New("invalid pay token")
	ErrInvalidListing   = errors.New("invalid listing")
	ErrInvalidFee       = errors.New("invalid fee")
	ErrInvalidTreasury  = errors.New("invalid treasury")
	ErrInvalidLimit     = errors.New("invalid limit count")
	ErrNotNftCollection = errors.New("not nft collection")

	// state-conflict failures
	ErrAlreadyUsedId    = errors.New("already used listing id")
	ErrNotSeller        = errors.New("caller is not seller")
	ErrIsSeller         = errors.New("caller is seller")
	ErrNotForAuction    = errors.New("not purchasable for auction listing")
	ErrOnlyForAuction   = errors.New("only for auction listing")
	ErrInactiveListing  = errors.New("inactive listing")
	ErrTooLowBid        = errors.New("bid lower than starting price")
	ErrLowerThanHighest = errors.New("bid lower than highest")
	ErrValidBidExists   = errors.New("valid bid exists")
	ErrNoActiveBid      = errors.New("no active bid")
	ErrListingSettled   = errors.New("listing already settled")
	ErrInvalidQuantity  = errors.New("invalid purchase quantity")

	// arithmetic/invariant failures
	ErrFeeOverflow = errors.New("fee exceeds settlement amount")
)
