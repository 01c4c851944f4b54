// Package response decodes API response envelopes and normalizes error bodies
package response

// StatusName represents custom string type for custom status code text
type StatusName string

const (
	// StatusBadRequestCode represents custom status text for HTTP status code 400
	StatusBadRequestCode StatusName = "BAD_REQUEST"
	// StatusUnauthorizedCode represents custom status text for HTTP status code 401
	StatusUnauthorizedCode StatusName = "UNAUTHORIZED"
	// StatusForbiddenCode represents custom status text for HTTP status code 403
	StatusForbiddenCode StatusName = "FORBIDDEN"
	// StatusNotFoundCode represents custom status text for HTTP status code 404
	StatusNotFoundCode StatusName = "NOT_FOUND"
	// StatusMethodNotAllowedCode represents custom status text for HTTP status code 405
	StatusMethodNotAllowedCode StatusName = "METHOD_NOT_ALLOWED"
	// StatusTooManyRequestsCode represents custom status text for HTTP status code 429
	StatusTooManyRequestsCode StatusName = "RATE_LIMIT_EXCEEDED"
	// StatusInternalServerErrorCode represents custom status text for HTTP status code 500 and other 5xx
	StatusInternalServerErrorCode StatusName = "INTERNAL_SERVER_ERROR"
	// StatusUnexpectedCode is used for any status the API does not document
	StatusUnexpectedCode StatusName = "UNEXPECTED"
)

// StatusMessageMap maps status message to respective status name
var StatusMessageMap = map[StatusName]string{
	StatusBadRequestCode:          "The request was rejected by Paystack",
	StatusUnauthorizedCode:        "Authentication is required",
	StatusForbiddenCode:           "The secret key is not allowed to perform this action",
	StatusNotFoundCode:            "The requested resource does not exist",
	StatusMethodNotAllowedCode:    "This HTTP method is not supported for this endpoint",
	StatusTooManyRequestsCode:     "Too many requests. Please try again later",
	StatusInternalServerErrorCode: "An unexpected error occurred",
}

// StatusNameMap maps HTTP status code to respective status name
var StatusNameMap = map[int]StatusName{
	400: StatusBadRequestCode,
	401: StatusUnauthorizedCode,
	403: StatusForbiddenCode,
	404: StatusNotFoundCode,
	405: StatusMethodNotAllowedCode,
	429: StatusTooManyRequestsCode,
	500: StatusInternalServerErrorCode,
}

// GetStatusName returns status name based on http status code
func GetStatusName(code int) StatusName {
	if name, ok := StatusNameMap[code]; ok {
		return name
	}
	if code >= 500 {
		return StatusInternalServerErrorCode
	}
	return StatusUnexpectedCode
}

// GetStatusMessage returns message based on status name
func GetStatusMessage(statusName StatusName) string {
	if message, ok := StatusMessageMap[statusName]; ok {
		return message
	}
	return "An unexpected error occurred"
}
