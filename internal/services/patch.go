package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"travelplanner/internal/db"
	"travelplanner/internal/domain"
)

// payload is a decoded request body that remembers which keys were sent.
type payload struct {
	keys map[string]json.RawMessage
}

// decodePayload reads raw into dst and records key presence. Unknown keys are ignored.
func decodePayload(raw []byte, dst any) (payload, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return payload{}, domain.ValidationError{Field: "body", Msg: "request body is required"}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	keys := map[string]json.RawMessage{}
	if err := dec.Decode(&keys); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
			return payload{}, domain.ValidationError{Field: "body", Msg: "invalid JSON", Err: err}
		}
		return payload{}, domain.ValidationError{Field: "body", Msg: "must be a JSON object", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return payload{}, domain.ValidationError{Field: "body", Msg: "unexpected data after JSON object"}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return payload{}, domain.ValidationError{Field: typeErr.Field, Msg: "must be of type " + strings.TrimPrefix(typeErr.Type.String(), "*"), Err: err}
		}
		return payload{}, domain.ValidationError{Field: "body", Msg: err.Error(), Err: err}
	}
	return payload{keys: keys}, nil
}

func (p payload) has(key string) bool {
	_, ok := p.keys[key]
	return ok
}

func (p payload) isNull(key string) bool {
	v, ok := p.keys[key]
	return ok && bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// required rejects an explicit null; an absent key keeps the current value.
func (p payload) required(key string) error {
	if p.isNull(key) {
		return domain.ValidationError{Field: key, Msg: "may not be null"}
	}
	return nil
}

func setString(p payload, key string, in *string, dst *string) error {
	if !p.has(key) {
		return nil
	}
	if err := p.required(key); err != nil {
		return err
	}
	*dst = strings.TrimSpace(*in)
	return nil
}

func setOptionalString(p payload, key string, in *string, dst **string) {
	if p.has(key) {
		*dst = db.NullIfEmpty(in)
	}
}

func setID(p payload, key string, in *int64, dst *int64) error {
	if !p.has(key) {
		return nil
	}
	if err := p.required(key); err != nil {
		return err
	}
	*dst = *in
	return nil
}

func setOptional[T any](p payload, key string, in *T, dst **T) {
	if p.has(key) {
		*dst = in
	}
}
