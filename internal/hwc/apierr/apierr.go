package apierr

import (
	"errors"
	"fmt"

	"github.com/huaweicloud/huaweicloud-sdk-go-v3/core/sdkerr"
)

// ErrAPI matches any failed call against a Huawei Cloud service.
var ErrAPI = errors.New("huawei cloud api error")

// Error records which operation failed. The SDK error stays reachable via Unwrap.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrAPI
}

// Wrap tags err with the failing operation. Returns nil for a nil err.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// RequestID returns the request id of a service error response, or "" if err
// did not come back from the service.
func RequestID(err error) string {
	var respErr *sdkerr.ServiceResponseError
	if errors.As(err, &respErr) {
		return respErr.RequestId
	}
	return ""
}
