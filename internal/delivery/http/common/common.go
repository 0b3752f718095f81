package http_common

type ErrorResponse struct {
	Message string `json:"error"`
}

// RequestBase reconstructs the origin that handled the request, so
// share links work behind any host the service is deployed on. An
// override wins when configured.
func RequestBase(override string, tlsUsed bool, host string) string {
	if override != "" {
		return override
	}
	scheme := "http"
	if tlsUsed {
		scheme = "https"
	}
	return scheme + "://" + host
}
