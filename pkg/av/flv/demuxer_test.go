package flv

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flvtag/pkg/av"
)

func TestDemuxerDecodeHeader(t *testing.T) {
	d, err := NewDemuxer()
	require.NoError(t, err)

	buf := buildTag(byte(TagTypeVideo), 0x01000064, []byte{0x17, 0x00, 0x00, 0x00, 0x00}, []byte{0x01})
	pkt := av.NewPacket(av.WithPacketData(buf))

	require.NoError(t, d.DecodeHeader(pkt))
	assert.Equal(t, av.VideoType, pkt.PacketType)
	assert.Equal(t, uint32(0x01000064), pkt.Timestamp)
	assert.Equal(t, uint32(0), pkt.StreamID)

	vh, ok := pkt.PacketHeader.(av.VideoPacketHeader)
	require.True(t, ok)
	assert.True(t, vh.IsKeyFrame())
	assert.True(t, vh.IsSequenceHeader())

	audio := av.NewPacket(
		av.WithPacketType(av.AudioType),
		av.WithPacketData(buildTag(byte(TagTypeAudio), 0, []byte{0xAF, 0x00}, []byte{0x12, 0x10})),
	)
	require.NoError(t, d.DecodeHeader(audio))
	ah, ok := audio.PacketHeader.(av.AudioPacketHeader)
	require.True(t, ok)
	assert.True(t, ah.IsSequenceHeader())
	assert.Equal(t, 44100, ah.SampleRateHz())

	assert.Equal(t, float64(1), testutil.ToFloat64(d.decoded.WithLabelValues("video")))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.decoded.WithLabelValues("audio")))
}

func TestDemuxerErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	d, err := NewDemuxer(WithDemuxerRegisterer(reg))
	require.NoError(t, err)

	assert.Error(t, d.DecodeHeader(av.NewPacket(av.WithPacketData([]byte{0x09, 0x00}))))
	assert.Error(t, d.DecodeHeader(av.NewPacket(av.WithPacketData(buildTag(0x05, 0, nil, nil)))))

	// declared audio, carries meta
	mismatch := av.NewPacket(
		av.WithPacketType(av.AudioType),
		av.WithPacketData(buildTag(byte(TagTypeMeta), 0, nil, []byte{0x05})),
	)
	assert.Error(t, d.DecodeHeader(mismatch))
	assert.Nil(t, mismatch.PacketHeader)

	assert.Equal(t, float64(1), testutil.ToFloat64(d.failed.WithLabelValues(reasonTruncated)))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.failed.WithLabelValues(reasonUnknownType)))
	assert.Equal(t, float64(1), testutil.ToFloat64(d.failed.WithLabelValues(reasonMismatch)))

	// metrics names are taken on this registry
	_, err = NewDemuxer(WithDemuxerRegisterer(reg))
	assert.Error(t, err)
}
