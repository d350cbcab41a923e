package handlers

import (
	"errors"
	"manutencao_xpto/pkg"
	"net"
	"net/http"
)

// storeUnavailableError maps transport-level failures (DynamoDB or the blob
// store unreachable) to 503 so callers can tell connectivity problems from
// application bugs. AWS SDK operation errors wrap the underlying *url.Error,
// which satisfies net.Error.
func storeUnavailableError(err error) (*pkg.AppError, bool) {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Backing store unreachable", err, http.StatusServiceUnavailable), true
	}
	return nil, false
}
