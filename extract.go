package geneticsqa

import (
	"encoding/json"
	"errors"
	"strings"
)

// Fallback order for pulling a JSON payload out of completion text: a
// json-tagged fence wins over a bare fence, a bare fence wins over raw text.
// Multiple fenced blocks or prose wrapped around fences are out of contract
// and fail closed at the JSON parser.

const (
	jsonFence = "```json"
	bareFence = "```"
)

// ExtractJSON strips one optional layer of code fencing from raw completion
// text and returns the candidate JSON payload. An opened but unterminated
// fence is a ParseError.
func ExtractJSON(raw string) (string, error) {
	body := raw

	if idx := strings.Index(raw, jsonFence); idx >= 0 {
		inner, err := fencedBody(raw[idx+len(jsonFence):])
		if err != nil {
			return "", err
		}
		body = inner
	} else if idx := strings.Index(raw, bareFence); idx >= 0 {
		inner, err := fencedBody(raw[idx+len(bareFence):])
		if err != nil {
			return "", err
		}
		body = inner
	}

	return strings.TrimSpace(body), nil
}

func fencedBody(rest string) (string, error) {
	end := strings.Index(rest, bareFence)
	if end < 0 {
		return "", &ParseError{
			Fragment: snippet(rest),
			Err:      errors.New("unterminated code fence"),
		}
	}
	return rest[:end], nil
}

// DecodeQuestion extracts and parses a question record from completion text.
func DecodeQuestion(raw string) (*Question, error) {
	return decodePayload[Question](raw)
}

// DecodeReviewVerdict extracts and parses a review verdict from completion text.
func DecodeReviewVerdict(raw string) (*ReviewVerdict, error) {
	return decodePayload[ReviewVerdict](raw)
}

// DecodeDefenseVerdict extracts and parses a defense verdict from completion text.
func DecodeDefenseVerdict(raw string) (*DefenseVerdict, error) {
	return decodePayload[DefenseVerdict](raw)
}

func decodePayload[T any](raw string) (*T, error) {
	body, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, &ParseError{Fragment: snippet(body), Err: err}
	}
	return &v, nil
}

// snippet bounds diagnostic fragments the way the console output does.
func snippet(s string) string {
	const max = 500
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
