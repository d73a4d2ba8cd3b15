package service

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession           = errors.New("no active session")
	ErrMissingClient       = errors.New("client id is required")
	ErrInvalidLocation     = errors.New("location must be \"lat,lon\"")
	ErrInvalidQuantity     = errors.New("quantity must not be zero")
	ErrProductNotFound     = errors.New("product not found")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrEmptyGroup          = errors.New("cart has no items for this restaurant")
	ErrNoDeliveryLocation  = errors.New("delivery location is not set")
	ErrNoPaymentInfo       = errors.New("restaurant has no payment information configured")
	ErrRestaurantClosed    = errors.New("restaurant is closed now")
	ErrRestaurantSuspended = errors.New("restaurant is suspended")
	ErrNoPendingCheckout   = errors.New("no checkout awaiting confirmation")
	ErrOrderNotCancelable  = errors.New("only pending orders can be cancelled")
	ErrOrderNotDeliverable = errors.New("order is not on its way to be delivered")
	ErrAlreadyConfirmed    = errors.New("delivery was already confirmed")
	ErrChatNotFound        = errors.New("chat channel not found")
	ErrOrderNotOwned       = errors.New("order belongs to another client")
	ErrInvalidMessage      = errors.New("invalid chat message")
)

// Checkout submission steps, in execution order.
const (
	StepCreateOrder    = "create_order"
	StepCreateChat     = "create_chat"
	StepInitialMessage = "initial_message"
	StepClearCart      = "clear_cart"
)

// StepError names the submission step that failed. Steps before it are not
// rolled back.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("checkout step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
