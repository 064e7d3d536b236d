package flv

import (
	"flvtag/pkg/common"
)

// Tag is one decoded FLV tag: *VideoTag, *AudioTag or *MetaTag.
//
// Raw and Payload are views into the buffer passed to Decode. They stay valid only while
// that buffer is alive and unmodified; use CopyPayload to keep the payload past that.
type Tag interface {
	Type() TagType
	Filtered() bool
	DataSize() uint32
	Timestamp() uint32
	TimestampExtended() uint8
	StreamID() uint32
	ExtendedTimestamp() uint32

	Raw() []byte
	Payload() []byte
	CopyPayload() []byte

	isTag()
}

// TagHeader is the 11 byte envelope shared by every tag.
type TagHeader struct {
	tagType           TagType // 5 bits
	filtered          bool    // 1 bit, packet needs pre-processing (encryption)
	dataSize          uint32  // 3 bytes, includes the extension header
	timestamp         uint32  // 3 bytes, ms
	timestampExtended uint8   // high 8 bits of the 32 bit timestamp
	streamID          uint32  // 3 bytes, always 0

	data          []byte // tag bytes, len == TagHeaderSize+dataSize
	payloadOffset int
}

func (h *TagHeader) Type() TagType {
	return h.tagType
}

func (h *TagHeader) Filtered() bool {
	return h.filtered
}

func (h *TagHeader) DataSize() uint32 {
	return h.dataSize
}

func (h *TagHeader) Timestamp() uint32 {
	return h.timestamp
}

func (h *TagHeader) TimestampExtended() uint8 {
	return h.timestampExtended
}

func (h *TagHeader) StreamID() uint32 {
	return h.streamID
}

// ExtendedTimestamp returns the full 32 bit dts in ms. The 24 bit field alone wraps after ~4.66h.
func (h *TagHeader) ExtendedTimestamp() uint32 {
	return uint32(h.timestampExtended)<<24 | h.timestamp
}

func (h *TagHeader) Raw() []byte {
	return h.data
}

func (h *TagHeader) Payload() []byte {
	return h.data[h.payloadOffset:]
}

func (h *TagHeader) CopyPayload() []byte {
	p := h.Payload()
	out := make([]byte, len(p))
	copy(out, p)
	return out
}

func (h *TagHeader) decode(b []byte) error {
	if len(b) < TagHeaderSize {
		return truncated("tag header", TagHeaderSize, len(b))
	}

	h.tagType = TagType(b[0] & tagTypeMask)
	h.filtered = b[0]&tagFilterMask != 0
	h.dataSize = common.BytesAsUint32(b[1:4], true)
	h.timestamp = common.BytesAsUint32(b[4:7], true)
	h.timestampExtended = b[7]
	h.streamID = common.BytesAsUint32(b[8:11], true)

	end := TagHeaderSize + int(h.dataSize)
	if len(b) < end {
		return truncated("tag", end, len(b))
	}

	// cap the view so appends by the caller never reach bytes past the tag
	h.data = b[:end:end]
	h.payloadOffset = TagHeaderSize

	return nil
}

// extHeader returns the first n bytes after the common header, ErrTruncated if dataSize is smaller.
func (h *TagHeader) extHeader(what string, n int) ([]byte, error) {
	if int(h.dataSize) < n {
		return nil, truncated(what, n, int(h.dataSize))
	}
	return h.data[TagHeaderSize : TagHeaderSize+n], nil
}
