package jwt

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// segmentCount is the number of dot-separated segments in a token (header.payload.signature).
	segmentCount = 3

	// BearerPrefix is stripped from the start of any token passed to a decode or validate call,
	// so the whole Authorization header value can be used as is.
	BearerPrefix = "Bearer "
)

// Parts holds the three raw, still-encoded segments of a token.
type Parts struct {
	Header    string
	Payload   string
	Signature string
}

// SigningInput returns the bytes covered by the signature.
func (p Parts) SigningInput() string {
	return p.Header + "." + p.Payload
}

// SplitToken strips a leading "Bearer " and splits raw into its three segments.
func SplitToken(raw string) (Parts, error) {
	raw = strings.TrimPrefix(raw, BearerPrefix)

	segments := strings.Split(raw, ".")
	if len(segments) != segmentCount {
		return Parts{}, &Error{Reason: ReasonInvalidStructure, Segments: len(segments)}
	}

	return Parts{
		Header:    segments[0],
		Payload:   segments[1],
		Signature: segments[2],
	}, nil
}

// EncodeSegment serializes v as JSON and returns it base64url-encoded without padding.
func EncodeSegment(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("jwt: marshal segment: %w", err)
	}
	return encodeRaw(data), nil
}

// DecodeSegment reverses EncodeSegment for a JSON object. Padding is optional.
// Numbers are decoded as json.Number.
func DecodeSegment(text string) (map[string]any, error) {
	data, err := decodeRaw(text)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("unmarshal: trailing data after object")
	}
	if out == nil {
		return nil, fmt.Errorf("unmarshal: segment is not a JSON object")
	}

	return out, nil
}

func encodeRaw(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeRaw(text string) ([]byte, error) {
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(text, "="))
	if err != nil {
		return nil, fmt.Errorf("base64url: %w", err)
	}
	return data, nil
}

// decodePart wraps DecodeSegment failures as structure errors naming the segment.
func decodePart(name, text string) (map[string]any, error) {
	out, err := DecodeSegment(text)
	if err != nil {
		return nil, &Error{Reason: ReasonInvalidStructure, Segment: name, Err: err}
	}
	return out, nil
}
