package exitcode

import (
	"errors"

	"discordsend/internal/errorwrapper"
	"discordsend/internal/webhook"
)

// Exit statuses reported to the shell. Internally errors carry richer
// context (errorwrapper types); they collapse onto these four codes at
// the top level.
const (
	OK          = 0
	Environment = 1 // missing home dir, unreadable config file, logger setup
	Usage       = 2 // malformed or out-of-bounds flag values
	Webhook     = 3 // no webhook resolvable, bad shape, failed probe
	Send        = 4 // non-2xx response from the final dispatch
)

// FromError maps an error from any pipeline stage to its exit status.
func FromError(err error) int {
	if err == nil {
		return OK
	}

	var verr *webhook.VerificationError
	if errors.As(err, &verr) || errors.Is(err, errorwrapper.ErrInvalidConfiguration) {
		return Webhook
	}

	var valErr *errorwrapper.ValidationError
	if errors.As(err, &valErr) || errors.Is(err, errorwrapper.ErrInvalidInput) {
		return Usage
	}

	var httpErr *errorwrapper.HTTPError
	var netErr *errorwrapper.NetworkError
	if errors.As(err, &httpErr) || errors.As(err, &netErr) || errors.Is(err, errorwrapper.ErrNetworkFailure) {
		return Send
	}

	return Environment
}
