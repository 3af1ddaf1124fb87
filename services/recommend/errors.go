package recommend

import "github.com/pkg/errors"

// ErrInvalidResponseShape marks a call that reached the model but came
// back with something other than a JSON array at the top level.
var ErrInvalidResponseShape = errors.New("response is not a list of recommendations")

// UpstreamError wraps any transport, auth or malformed-payload failure of
// the underlying generate call.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "upstream failure: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// GenericErrorMessage is the single user-facing message for any failed
// recommendation request, whatever the underlying cause.
const GenericErrorMessage = "Failed to get recommendations from the AI. " +
	"The model may be overloaded or the request was invalid. Please try again later."
