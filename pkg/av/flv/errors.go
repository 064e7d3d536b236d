package flv

import "github.com/pkg/errors"

// Decode failures. Use errors.Cause to compare, the returned error carries context.
var (
	ErrTruncated      = errors.New("truncated flv tag")
	ErrUnknownTagType = errors.New("unknown flv tag type")
)

func truncated(what string, need, got int) error {
	return errors.Wrapf(ErrTruncated, "%s needs %d bytes, got %d", what, need, got)
}
