package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"with line", NewParseError("berry.yaml", 3, errors.New("bad indent")), "berry.yaml:3: bad indent"},
		{"without line", NewParseError("berry.toml", 0, errors.New("unknown keys: angel")), "berry.toml: unknown keys: angel"},
		{"inline source", NewParseError("", 2, errors.New("oops")), "<preset>:2: oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.err, tt.want)
			require.ErrorIs(t, tt.err, ErrInvalidPreset)
		})
	}
}

func TestParseErrorKeepsCause(t *testing.T) {
	t.Parallel()

	err := NewParseError("missing.yaml", 0, fs.ErrNotExist)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.ErrorIs(t, err, ErrInvalidPreset)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "missing.yaml", pe.Path)
	require.Equal(t, fs.ErrNotExist.Error(), pe.Message)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("oneof")
	err := NewValidationError("type", `must be one of [linear smear], got "wobble"`, cause)
	require.EqualError(t, err, `invalid preset field "type": must be one of [linear smear], got "wobble"`)
	require.ErrorIs(t, err, ErrInvalidPreset)
	require.ErrorIs(t, err, cause)

	require.EqualError(t, NewValidationError("", "unknown preset format \"json\"", nil), `invalid preset: unknown preset format "json"`)
}

func TestNilErrorsAreEmpty(t *testing.T) {
	t.Parallel()

	var pe *ParseError
	var ve *ValidationError
	require.Empty(t, pe.Error())
	require.Empty(t, ve.Error())
	require.Nil(t, pe.Unwrap())
	require.Nil(t, ve.Unwrap())
}
