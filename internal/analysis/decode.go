package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bizmatters/groundcite-gateway/internal/models"
)

// MsgInvalidJSON is returned for an empty body or a body whose top-level value
// is falsy: null, false, 0, "", [] or {}
const MsgInvalidJSON = "Invalid JSON in request body"

// DecodeError reports a request body that could not be turned into a RequestBody.
// Missing and wrongly typed fields both end up here.
type DecodeError struct {
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	return e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeRequest decodes a raw analysis request body
func DecodeRequest(raw []byte) (*models.RequestBody, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, &DecodeError{Message: MsgInvalidJSON}
	}

	var top interface{}
	if err := json.Unmarshal(trimmed, &top); err != nil {
		return nil, parseFailure(err)
	}
	if isFalsy(top) {
		return nil, &DecodeError{Message: MsgInvalidJSON}
	}

	var body models.RequestBody
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return nil, parseFailure(err)
	}

	return &body, nil
}

func parseFailure(err error) *DecodeError {
	return &DecodeError{
		Message: fmt.Sprintf("Failed to parse JSON: %v", err),
		Err:     err,
	}
}

func isFalsy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case []interface{}:
		return len(t) == 0
	case map[string]interface{}:
		return len(t) == 0
	}
	return false
}
