// Package response decodes API response envelopes and normalizes error bodies
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of a failed response is read
const maxErrorBody = 1 << 20

// ErrorBody is the normalized content of a non-2xx response
type ErrorBody struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// IsSuccess reports whether resp carries a 2xx status
func IsSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Decode parses a successful response body into out
func Decode(resp *http.Response, out any) error {
	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("error parsing response body, %w", err)
	}
	return nil
}

// DecodeError reads the error envelope from a failed response.
// Bodies that are not JSON, or carry no message, fall back to the status name table.
func DecodeError(resp *http.Response) ErrorBody {

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body ErrorBody
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			body = ErrorBody{}
		}
	}

	// status is false on every failure, whatever the body claims
	body.Status = false
	if body.Message == "" {
		body.Message = GetStatusMessage(GetStatusName(resp.StatusCode))
	}

	return body
}
