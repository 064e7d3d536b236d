package flv

import (
	"flvtag/pkg/av"
	"flvtag/pkg/common"
)

type VideoTag struct {
	TagHeader

	frameType FrameType // 4 bits
	codecID   CodecID   // 4 bits

	// AVC only
	avcPacketType   AVCPacketType
	compositionTime int32 // 合成时间, pts - dts (SI24)
}

var _ av.VideoPacketHeader = (*VideoTag)(nil)

func (t *VideoTag) isTag() {}

func (t *VideoTag) FrameType() FrameType {
	return t.frameType
}

func (t *VideoTag) CodecID() CodecID {
	return t.codecID
}

// IsSupportedFrameType reports whether the frame type is one of the five defined by FLV.
// Check it before relying on PresentationTimestamp.
func (t *VideoTag) IsSupportedFrameType() bool {
	return t.frameType.IsSupported()
}

// AVCPacketType is only meaningful for AVC, ok is false for every other codec.
func (t *VideoTag) AVCPacketType() (typ AVCPacketType, ok bool) {
	if t.codecID != CodecAVC {
		return 0, false
	}
	return t.avcPacketType, true
}

// CompositionTime is only meaningful for AVC, ok is false for every other codec.
func (t *VideoTag) CompositionTime() (cts int32, ok bool) {
	if t.codecID != CodecAVC {
		return 0, false
	}
	return t.compositionTime, true
}

// PresentationTimestamp is dts + composition time for AVC, dts otherwise.
// It may be negative when a stream starts with a negative composition offset.
func (t *VideoTag) PresentationTimestamp() int64 {
	pts := int64(t.ExtendedTimestamp())
	if t.codecID == CodecAVC {
		pts += int64(t.compositionTime)
	}
	return pts
}

func (t *VideoTag) IsKeyFrame() bool {
	return t.frameType == FrameTypeKey
}

func (t *VideoTag) IsSequenceHeader() bool {
	return t.codecID == CodecAVC && t.avcPacketType == AVCSequenceHeader
}

func (t *VideoTag) decode(b []byte) error {
	if err := t.TagHeader.decode(b); err != nil {
		return err
	}

	ext, err := t.TagHeader.extHeader("video tag header", VideoTagExtHeaderSize)
	if err != nil {
		return err
	}

	flags := ext[0]
	t.frameType = FrameType(flags >> 4)
	t.codecID = CodecID(flags & 0xf)

	if t.codecID == CodecAVC {
		t.avcPacketType = AVCPacketType(ext[1])
		t.compositionTime = common.SignExtend(common.BytesAsUint32(ext[2:5], true), 3)
	}

	t.payloadOffset = TagHeaderSize + VideoTagExtHeaderSize

	return nil
}
