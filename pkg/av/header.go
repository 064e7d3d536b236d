package av

type VideoPacketHeader interface {
	PacketHeader
	IsKeyFrame() bool       //是否关键帧
	IsSequenceHeader() bool // 是否Seq (AVC sequence header)
	PresentationTimestamp() int64
}

type AudioPacketHeader interface {
	PacketHeader
	IsSequenceHeader() bool // AAC sequence header
	SampleRateHz() int
}
