package flv

import (
	"github.com/pkg/errors"
)

// PeekType reads the tag type of b without decoding the rest of the header.
func PeekType(b []byte) (TagType, error) {
	if len(b) < 1 {
		return TagTypeReserved, truncated("tag type", 1, len(b))
	}
	return TagType(b[0] & tagTypeMask), nil
}

// Decode decodes the single tag at the start of b. b must not carry the 4 byte previous tag size.
// No bytes past TagHeaderSize+DataSize are read, and the returned tag borrows b.
// Decode is safe for concurrent use as long as each call gets its own buffer.
func Decode(b []byte) (Tag, error) {
	if len(b) < TagHeaderSize {
		return nil, truncated("tag header", TagHeaderSize, len(b))
	}

	typ, _ := PeekType(b)
	switch typ {
	case TagTypeVideo:
		t := new(VideoTag)
		if err := t.decode(b); err != nil {
			return nil, err
		}
		return t, nil
	case TagTypeAudio:
		t := new(AudioTag)
		if err := t.decode(b); err != nil {
			return nil, err
		}
		return t, nil
	case TagTypeMeta:
		t := new(MetaTag)
		if err := t.decode(b); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, errors.Wrapf(ErrUnknownTagType, "tag type %d", uint8(typ))
	}
}
