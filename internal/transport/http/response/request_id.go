package response

import (
	"net/http"

	appctx "github.com/mangodesk/summary-service/internal/pkg/context"
)

// RequestIDFromContext extracts the request id set by the middleware.
func RequestIDFromContext(r *http.Request) string {
	return appctx.GetRequestID(r.Context())
}
