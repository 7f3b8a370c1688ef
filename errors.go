package globus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/romgrk/globus-go/internal/apierrors"
)

var (
	// ErrInvalidUsage is wrapped by errors returned when options fail
	// validation. No request is sent in that case.
	ErrInvalidUsage = errors.New("globus: invalid usage")
	// ErrNotImplemented is returned by operations the SDK exposes but cannot
	// perform yet. No request is sent in that case.
	ErrNotImplemented = errors.New("globus: not implemented")
	// ErrTransport matches every *TransportError.
	ErrTransport = apierrors.ErrTransport
)

// TransportError reports a call that produced no domain outcome (network
// failure, or an error status without a JSON body).
type TransportError = apierrors.TransportError

func invalidUsage(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidUsage, fmt.Sprintf(format, args...))
}

func requireFields(op string, fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			return invalidUsage(op, "%s is required", fields[i])
		}
	}
	return nil
}
