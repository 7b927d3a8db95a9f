package logic

import "fmt"

type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

// Reason identifies which cart rule rejected a command.
type Reason string

const (
	ReasonInsufficientStock          Reason = "INSUFFICIENT_STOCK"
	ReasonProductNotFound            Reason = "PRODUCT_NOT_FOUND"
	ReasonExcessRemoval              Reason = "EXCESS_REMOVAL"
	ReasonNegativeQuantity           Reason = "NEGATIVE_QUANTITY"
	ReasonInvalidQuantity            Reason = "INVALID_QUANTITY"
	ReasonInvalidPercentage          Reason = "INVALID_PERCENTAGE"
	ReasonNegativeDiscountParameters Reason = "NEGATIVE_DISCOUNT_PARAMETERS"
)

// Error message constants for cart domain.
const (
	ErrMsgInsufficientStock   = "Not enough stock"
	ErrMsgItemNotInCart       = "Product not found in cart"
	ErrMsgExcessRemoval       = "Quantity to remove exceeds quantity in cart"
	ErrMsgQuantityNegative    = "Quantity cannot be negative"
	ErrMsgQuantityPositive    = "Quantity must be positive"
	ErrMsgPercentageRange     = "Percentage must be between 0 and 100"
	ErrMsgDiscountNonNegative = "Discount values must be non-negative"
)

// Sentinels for errors.Is. Only the Reason is compared.
var (
	ErrInsufficientStock          = &CommandError{Code: StatusFailedPrecondition, Reason: ReasonInsufficientStock, Message: ErrMsgInsufficientStock}
	ErrProductNotFound            = &CommandError{Code: StatusFailedPrecondition, Reason: ReasonProductNotFound, Message: ErrMsgItemNotInCart}
	ErrExcessRemoval              = &CommandError{Code: StatusFailedPrecondition, Reason: ReasonExcessRemoval, Message: ErrMsgExcessRemoval}
	ErrNegativeQuantity           = &CommandError{Code: StatusInvalidArgument, Reason: ReasonNegativeQuantity, Message: ErrMsgQuantityNegative}
	ErrInvalidQuantity            = &CommandError{Code: StatusInvalidArgument, Reason: ReasonInvalidQuantity, Message: ErrMsgQuantityPositive}
	ErrInvalidPercentage          = &CommandError{Code: StatusInvalidArgument, Reason: ReasonInvalidPercentage, Message: ErrMsgPercentageRange}
	ErrNegativeDiscountParameters = &CommandError{Code: StatusInvalidArgument, Reason: ReasonNegativeDiscountParameters, Message: ErrMsgDiscountNonNegative}
)

// CommandError is returned when a cart operation is rejected. The cart is
// left exactly as it was before the call.
type CommandError struct {
	Code    StatusCode
	Reason  Reason
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

func NewInvalidArgument(reason Reason, message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Reason: reason, Message: message}
}

func NewInvalidArgumentf(reason Reason, format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func NewFailedPrecondition(reason Reason, message string) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Reason: reason, Message: message}
}

func NewFailedPreconditionf(reason Reason, format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Reason: reason, Message: fmt.Sprintf(format, args...)}
}
