package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTokenName     = errors.New("token name must be 1 to 64 characters")
	ErrInvalidTokenSymbol   = errors.New("token symbol must be 1 to 10 characters")
	ErrInvalidTotalSupply   = errors.New("total supply must be a positive number")
	ErrInvalidDecimals      = errors.New("decimals must be between 0 and 18")
	ErrInvalidTokenAddress  = errors.New("enter a valid token address")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrInvalidPrice         = errors.New("price must be a positive number")
	ErrInvalidPaymentToken  = errors.New("payment token must be PRDX or USDC")
	ErrInvalidDuration      = errors.New("duration must be between 1 and 90 days")
	ErrInvalidReferral      = errors.New("referral percent must be between 1 and 100")
	ErrInvalidURL           = errors.New("enter a valid URL")
	ErrDescriptionTooLong   = errors.New("project description is too long")
	ErrInvalidSellerAddress = errors.New("invalid seller address")
	ErrInvalidListingID     = errors.New("listing id is required")
)
