package services

import "errors"

// Sentinel errors the controllers map to HTTP statuses. Anything not in
// this list surfaces as an internal error.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotAnonymous       = errors.New("user is not anonymous")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrPasswordLoginUnset = errors.New("account has no password login")
	ErrDuplicateAddress   = errors.New("identical address already saved")
	ErrInsufficientStock  = errors.New("insufficient stock for requested quantity")
	ErrProductInactive    = errors.New("product is not available")
	ErrNoActiveItems      = errors.New("cart has no active items")
	ErrOrderNotPayable    = errors.New("order is not in a payable state")
	ErrOrderTerminal      = errors.New("order is already in a terminal state")
	ErrSlugTaken          = errors.New("product slug already in use")
	ErrAlreadyWishlisted  = errors.New("product already in wishlist")
	ErrOAuthStateInvalid  = errors.New("oauth state is missing or expired")
	ErrProviderMismatch   = errors.New("unsupported payment provider")
)
