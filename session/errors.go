package session

import (
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shopcart/logic"
)

const (
	ErrMsgUnknownCommand  = "Unknown command type"
	ErrMsgProductRequired = "Product is required"
	reasonUnknownCommand  = "UNKNOWN_COMMAND"
	reasonProductRequired = "PRODUCT_REQUIRED"
)

var (
	errUnknownCommand  = logic.NewInvalidArgument(reasonUnknownCommand, ErrMsgUnknownCommand)
	errProductRequired = logic.NewInvalidArgument(reasonProductRequired, ErrMsgProductRequired)
)

// mapError converts a cart error into a grpc status carrying an ErrorInfo
// detail with the rejection reason.
func mapError(err error) error {
	var cmdErr *logic.CommandError
	if !errors.As(err, &cmdErr) {
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}

	code := codes.Internal
	switch cmdErr.Code {
	case logic.StatusInvalidArgument:
		code = codes.InvalidArgument
	case logic.StatusFailedPrecondition:
		code = codes.FailedPrecondition
	}

	st := status.New(code, cmdErr.Message)
	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(cmdErr.Reason),
		Domain: Domain,
	})
	if derr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ReasonOf extracts the cart rejection reason from an error returned by a
// Session. It returns "" for errors that carry none.
func ReasonOf(err error) logic.Reason {
	st, ok := status.FromError(err)
	if !ok || st == nil {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.Domain == Domain {
			return logic.Reason(info.Reason)
		}
	}
	return ""
}

func outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	var cmdErr *logic.CommandError
	if errors.As(err, &cmdErr) {
		return strings.ToLower(string(cmdErr.Reason))
	}
	return "error"
}
