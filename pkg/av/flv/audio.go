package flv

import (
	"flvtag/pkg/av"
)

type AudioTag struct {
	TagHeader

	soundFormat SoundFormat // 4 bits, 如：10（AAC）
	soundRate   SoundRate   // 2 bits
	soundSize   SoundSize   // 1 bit
	soundType   SoundType   // 1 bit

	aacPacketType AACPacketType // AAC only
}

var _ av.AudioPacketHeader = (*AudioTag)(nil)

func (t *AudioTag) isTag() {}

func (t *AudioTag) SoundFormat() SoundFormat {
	return t.soundFormat
}

func (t *AudioTag) SoundRate() SoundRate {
	return t.soundRate
}

func (t *AudioTag) SoundSize() SoundSize {
	return t.soundSize
}

func (t *AudioTag) SoundType() SoundType {
	return t.soundType
}

func (t *AudioTag) SampleRateHz() int {
	return t.soundRate.Hz()
}

// AACPacketType is only meaningful for AAC, ok is false for every other format.
// A sequence header carries the AudioSpecificConfig, not a frame.
func (t *AudioTag) AACPacketType() (typ AACPacketType, ok bool) {
	if t.soundFormat != SoundAAC {
		return 0, false
	}
	return t.aacPacketType, true
}

func (t *AudioTag) IsSequenceHeader() bool {
	return t.soundFormat == SoundAAC && t.aacPacketType == AACSequenceHeader
}

func (t *AudioTag) decode(b []byte) error {
	if err := t.TagHeader.decode(b); err != nil {
		return err
	}

	ext, err := t.TagHeader.extHeader("audio tag header", 1)
	if err != nil {
		return err
	}

	flags := ext[0]
	t.soundFormat = SoundFormat(flags >> 4)
	t.soundRate = SoundRate((flags >> 2) & 0x3)
	t.soundSize = SoundSize((flags >> 1) & 0x1)
	t.soundType = SoundType(flags & 0x1)

	n := 1
	if t.soundFormat == SoundAAC {
		if ext, err = t.TagHeader.extHeader("aac audio tag header", AudioTagExtHeaderSize); err != nil {
			return err
		}
		t.aacPacketType = AACPacketType(ext[1])
		n = AudioTagExtHeaderSize
	}

	t.payloadOffset = TagHeaderSize + n

	return nil
}
