package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"bounce/game"
)

// ErrMalformed wraps every decode failure.
var ErrMalformed = errors.New("malformed request")

// DecodeUpdate parses an update request body into a ball. Every field has to
// be present and numeric; range is not checked, Step clamps positions.
func DecodeUpdate(b []byte) (game.Ball, error) {
	req, err := decodeJSON[UpdateRequest](b)
	if err != nil {
		return game.Ball{}, err
	}
	if req.Ball == nil {
		return game.Ball{}, fmt.Errorf("%w: missing field %q", ErrMalformed, "ball")
	}

	f := req.Ball
	fields := []struct {
		name string
		v    *float64
	}{
		{"x", f.X},
		{"y", f.Y},
		{"dx", f.DX},
		{"dy", f.DY},
	}
	for _, fld := range fields {
		if fld.v == nil {
			return game.Ball{}, fmt.Errorf("%w: missing field %q", ErrMalformed, "ball."+fld.name)
		}
	}

	return game.Ball{X: *f.X, Y: *f.Y, DX: *f.DX, DY: *f.DY}, nil
}

func EncodeBall(b game.Ball) ([]byte, error) {
	return json.Marshal(NewBallState(b))
}

func decodeJSON[T any](b []byte) (T, error) {
	var out T
	if len(b) == 0 {
		return out, fmt.Errorf("%w: empty body", ErrMalformed)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}
