package flv

import "strconv"

const (
	TagHeaderSize         = 11
	VideoTagExtHeaderSize = 5
	AudioTagExtHeaderSize = 2 // nominal, non-AAC formats consume only 1 byte
	MetaTagExtHeaderSize  = 0

	tagTypeMask   = 0x1f
	tagFilterMask = 0x20
)

type TagType uint8

const (
	TagTypeReserved TagType = 0
	TagTypeAudio    TagType = 8
	TagTypeVideo    TagType = 9
	TagTypeMeta     TagType = 18
)

func (t TagType) String() string {
	switch t {
	case TagTypeAudio:
		return "audio"
	case TagTypeVideo:
		return "video"
	case TagTypeMeta:
		return "meta"
	case TagTypeReserved:
		return "reserved"
	}
	return unknown(uint8(t))
}

// 帧类型
type FrameType uint8

const (
	FrameTypeKey                FrameType = 1 // keyframe (for AVC, a seekable frame)
	FrameTypeInter              FrameType = 2 // inter frame (for AVC, a non-seekable frame)
	FrameTypeDisposableInter    FrameType = 3 // H.263 only
	FrameTypeGeneratedKey       FrameType = 4 // reserved for server use only
	FrameTypeVideoInfoOrCommand FrameType = 5
)

var frameTypeNames = map[FrameType]string{
	FrameTypeKey:                "keyframe",
	FrameTypeInter:              "inter frame",
	FrameTypeDisposableInter:    "disposable inter frame",
	FrameTypeGeneratedKey:       "generated keyframe",
	FrameTypeVideoInfoOrCommand: "video info/command frame",
}

func (f FrameType) IsSupported() bool {
	return f >= FrameTypeKey && f <= FrameTypeVideoInfoOrCommand
}

func (f FrameType) String() string {
	if name, ok := frameTypeNames[f]; ok {
		return name
	}
	return unknown(uint8(f))
}

// 视频编码ID
type CodecID uint8

const (
	CodecJPEG                CodecID = 1
	CodecH263                CodecID = 2
	CodecScreenVideo         CodecID = 3
	CodecOn2VP6              CodecID = 4
	CodecOn2VP6WithAlpha     CodecID = 5
	CodecScreenVideoVersion2 CodecID = 6
	CodecAVC                 CodecID = 7
)

var codecNames = map[CodecID]string{
	CodecJPEG:                "JPEG",
	CodecH263:                "Sorenson H.263",
	CodecScreenVideo:         "Screen video",
	CodecOn2VP6:              "On2 VP6",
	CodecOn2VP6WithAlpha:     "On2 VP6 with alpha",
	CodecScreenVideoVersion2: "Screen video version 2",
	CodecAVC:                 "AVC",
}

func (c CodecID) IsSupported() bool {
	return c >= CodecJPEG && c <= CodecAVC
}

func (c CodecID) String() string {
	if name, ok := codecNames[c]; ok {
		return name
	}
	return unknown(uint8(c))
}

type AVCPacketType uint8

const (
	AVCSequenceHeader AVCPacketType = 0
	AVCNALU           AVCPacketType = 1
	AVCEndOfSequence  AVCPacketType = 2
)

func (p AVCPacketType) String() string {
	switch p {
	case AVCSequenceHeader:
		return "sequence header"
	case AVCNALU:
		return "NALU"
	case AVCEndOfSequence:
		return "end of sequence"
	}
	return unknown(uint8(p))
}

// 音频编码格式
type SoundFormat uint8

const (
	SoundLinearPCMPlatformEndian SoundFormat = 0
	SoundADPCM                   SoundFormat = 1
	SoundMP3                     SoundFormat = 2
	SoundLinearPCMLittleEndian   SoundFormat = 3
	SoundNellymoser16kHzMono     SoundFormat = 4
	SoundNellymoser8kHzMono      SoundFormat = 5
	SoundNellymoser              SoundFormat = 6
	SoundG711ALaw                SoundFormat = 7
	SoundG711MuLaw               SoundFormat = 8
	SoundReserved                SoundFormat = 9
	SoundAAC                     SoundFormat = 10
	SoundSpeex                   SoundFormat = 11
	SoundMP38kHz                 SoundFormat = 14
	SoundDeviceSpecific          SoundFormat = 15
)

var soundFormatNames = map[SoundFormat]string{
	SoundLinearPCMPlatformEndian: "Linear PCM, platform endian",
	SoundADPCM:                   "ADPCM",
	SoundMP3:                     "MP3",
	SoundLinearPCMLittleEndian:   "Linear PCM, little endian",
	SoundNellymoser16kHzMono:     "Nellymoser 16kHz mono",
	SoundNellymoser8kHzMono:      "Nellymoser 8kHz mono",
	SoundNellymoser:              "Nellymoser",
	SoundG711ALaw:                "G.711 A-law",
	SoundG711MuLaw:               "G.711 mu-law",
	SoundReserved:                "reserved",
	SoundAAC:                     "AAC",
	SoundSpeex:                   "Speex",
	SoundMP38kHz:                 "MP3 8kHz",
	SoundDeviceSpecific:          "Device-specific sound",
}

// IsSupported reports false for 9 (reserved) and for the unassigned 12 and 13.
func (f SoundFormat) IsSupported() bool {
	_, ok := soundFormatNames[f]
	return ok && f != SoundReserved
}

func (f SoundFormat) String() string {
	if name, ok := soundFormatNames[f]; ok {
		return name
	}
	return unknown(uint8(f))
}

// 采样率 (0: 5.5kHZ  1: 11kHZ  2:22kHZ  3:44kHZ), always 3 for AAC
type SoundRate uint8

const (
	SoundRate5k5Hz SoundRate = 0
	SoundRate11kHz SoundRate = 1
	SoundRate22kHz SoundRate = 2
	SoundRate44kHz SoundRate = 3
)

var soundRateHz = [4]int{5512, 11025, 22050, 44100}

func (r SoundRate) Hz() int {
	if int(r) < len(soundRateHz) {
		return soundRateHz[r]
	}
	return 0
}

func (r SoundRate) String() string {
	switch r {
	case SoundRate5k5Hz:
		return "5.5kHz"
	case SoundRate11kHz:
		return "11kHz"
	case SoundRate22kHz:
		return "22kHz"
	case SoundRate44kHz:
		return "44kHz"
	}
	return unknown(uint8(r))
}

// 采样大小, only meaningful for uncompressed formats
type SoundSize uint8

const (
	SoundSize8Bit  SoundSize = 0
	SoundSize16Bit SoundSize = 1
)

func (s SoundSize) String() string {
	switch s {
	case SoundSize8Bit:
		return "8bit"
	case SoundSize16Bit:
		return "16bit"
	}
	return unknown(uint8(s))
}

// 声道类型 mono(单声道)  stereo(立体声)
type SoundType uint8

const (
	SoundTypeMono   SoundType = 0
	SoundTypeStereo SoundType = 1
)

func (s SoundType) String() string {
	switch s {
	case SoundTypeMono:
		return "mono"
	case SoundTypeStereo:
		return "stereo"
	}
	return unknown(uint8(s))
}

type AACPacketType uint8

const (
	AACSequenceHeader AACPacketType = 0
	AACRaw            AACPacketType = 1
)

func (p AACPacketType) String() string {
	switch p {
	case AACSequenceHeader:
		return "sequence header"
	case AACRaw:
		return "raw"
	}
	return unknown(uint8(p))
}

func unknown(v uint8) string {
	return "unknown(" + strconv.Itoa(int(v)) + ")"
}
