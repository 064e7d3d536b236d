package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gwuhaolin/livego/protocol/amf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"flvtag/pkg/common"
)

const avcNALUHex = "09 00000a 000064 00 000000 17 01 000000 0000000165"

func writeConfig(t *testing.T, body string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func newTestInspector(t *testing.T, body string, opts ...Option) *Inspector {
	opts = append([]Option{
		WithConfigPath(writeConfig(t, body)),
		WithLogger(zap.NewNop()),
		WithRegisterer(prometheus.NewRegistry()),
	}, opts...)

	i, err := New(opts...)
	require.NoError(t, err)
	return i
}

func metaTag(t *testing.T, vals ...interface{}) []byte {
	payload := new(bytes.Buffer)
	enc := &amf.Encoder{}
	for _, v := range vals {
		_, err := enc.Encode(payload, v, amf.AMF0)
		require.NoError(t, err)
	}

	b := make([]byte, 11)
	b[0] = 0x12
	common.UintAsBytes(uint32(payload.Len()), b[1:4], true)
	return append(b, payload.Bytes()...)
}

func TestInspectHex(t *testing.T) {
	i := newTestInspector(t, "DecodeMeta: true\n")

	r, err := i.InspectHex(avcNALUHex)
	require.NoError(t, err)

	assert.Equal(t, "video", r.Type)
	assert.Equal(t, uint32(10), r.DataSize)
	assert.Equal(t, uint32(100), r.ExtendedTimestamp)
	assert.Equal(t, 5, r.PayloadSize)
	require.NotNil(t, r.Video)
	assert.Equal(t, "keyframe", r.Video.FrameType)
	assert.Equal(t, "AVC", r.Video.Codec)
	assert.Equal(t, "NALU", r.Video.AVCPacketType)
	require.NotNil(t, r.Video.CompositionTime)
	assert.Equal(t, int32(0), *r.Video.CompositionTime)
	assert.Equal(t, int64(100), r.Video.PresentationTimestamp)
	assert.Nil(t, r.Audio)

	_, err = i.InspectHex("zz")
	assert.Error(t, err)
}

func TestInspectAudio(t *testing.T) {
	i := newTestInspector(t, "DecodeMeta: true\n")

	r, err := i.Inspect("mp3", []byte{0x08, 0x00, 0x00, 0x03, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x2E, 0xFF, 0xFB})
	require.NoError(t, err)
	require.NotNil(t, r.Audio)
	assert.Equal(t, "MP3", r.Audio.Format)
	assert.Equal(t, 44100, r.Audio.SampleRate)
	assert.Equal(t, "16bit", r.Audio.SampleSize)
	assert.Equal(t, "mono", r.Audio.Channels)
	assert.Empty(t, r.Audio.AACPacketType)
	assert.Equal(t, 2, r.PayloadSize)
}

func TestInspectMeta(t *testing.T) {
	obj := amf.Object{
		"duration":     float64(0),
		"width":        float64(1280),
		"height":       float64(720),
		"videocodecid": float64(7),
		"framerate":    float64(30),
		"stereo":       true,
		"encoder":      "obs-output module",
	}

	for name, tag := range map[string][]byte{
		"onMetaData":   metaTag(t, "onMetaData", obj),
		"setDataFrame": metaTag(t, "@setDataFrame", "onMetaData", obj),
	} {
		t.Run(name, func(t *testing.T) {
			i := newTestInspector(t, "DecodeMeta: true\n")

			r, err := i.Inspect(name, tag)
			require.NoError(t, err)
			assert.Equal(t, "meta", r.Type)
			assert.Equal(t, len(tag)-11, r.PayloadSize)
			require.NotNil(t, r.Meta)
			assert.Equal(t, float64(1280), r.Meta.Width)
			assert.Equal(t, float64(720), r.Meta.Height)
			assert.Equal(t, 7, r.Meta.VideoCodecID)
			assert.True(t, r.Meta.Stereo)
			assert.Equal(t, "obs-output module", r.Meta.Encoder)
		})
	}

	i := newTestInspector(t, "DecodeMeta: false\n")
	r, err := i.Inspect("meta", metaTag(t, "onMetaData", obj))
	require.NoError(t, err)
	assert.Nil(t, r.Meta)

	// other script data still decodes as a tag
	i = newTestInspector(t, "DecodeMeta: true\n")
	r, err = i.Inspect("cue", metaTag(t, "onCuePoint", amf.Object{"name": "x"}))
	require.NoError(t, err)
	assert.Equal(t, "meta", r.Type)
	assert.Nil(t, r.Meta)
}

func TestInspectError(t *testing.T) {
	i := newTestInspector(t, "DecodeMeta: true\n")

	r, err := i.Inspect("short", []byte{0x09, 0x00, 0x00})
	assert.Error(t, err)
	require.NotNil(t, r)
	assert.NotEmpty(t, r.Error)

	r, err = i.Inspect("unknown", []byte{0x05, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	assert.Error(t, err)
	assert.Contains(t, r.Error, "unknown flv tag type")
}

func TestInspectFile(t *testing.T) {
	i := newTestInspector(t, "DecodeMeta: true\n")

	path := filepath.Join(t.TempDir(), "tag.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x08, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xAF, 0x00, 0x12, 0x10}, 0644))

	r, err := i.InspectFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, r.Source)
	require.NotNil(t, r.Audio)
	assert.Equal(t, "AAC", r.Audio.Format)
	assert.Equal(t, "sequence header", r.Audio.AACPacketType)
	assert.Equal(t, 2, r.PayloadSize)

	_, err = i.InspectFile(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}

func TestWriteReport(t *testing.T) {
	out := new(bytes.Buffer)
	i := newTestInspector(t, "DecodeMeta: true\n", WithOutput(out))

	r, err := i.InspectHex(avcNALUHex)
	require.NoError(t, err)
	require.NoError(t, i.WriteReport([]*TagReport{r}))

	var got []TagReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "hex", got[0].Source)
	assert.Equal(t, "video", got[0].Type)
	require.NotNil(t, got[0].Video)
	assert.Equal(t, int64(100), got[0].Video.PresentationTimestamp)

	reportPath := filepath.Join(t.TempDir(), "report.yaml")
	i = newTestInspector(t, "ReportPath: "+reportPath+"\n")
	require.NoError(t, i.WriteReport([]*TagReport{r}))

	b, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "source: hex")
}

func TestNewConfigAndLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "flvtag.log")
	dir := writeConfig(t, "Log:\n  Path: "+logPath+"\n  Level: debug\n  Age: 1\n")

	i, err := New(WithConfigPath(dir), WithRegisterer(prometheus.NewRegistry()))
	require.NoError(t, err)
	assert.True(t, i.config.DecodeMeta)
	assert.Equal(t, "debug", i.config.Log.Level)

	_, err = i.InspectHex(avcNALUHex)
	require.NoError(t, err)
	require.NoError(t, i.Close())

	matches, err := filepath.Glob(logPath + "_*")
	require.NoError(t, err)
	assert.NotEmpty(t, matches)

	_, err = New(WithConfigPath(writeConfig(t, "Log:\n  Level: loud\n")), WithRegisterer(prometheus.NewRegistry()))
	assert.Error(t, err)

	_, err = New(WithConfigPath(t.TempDir()), WithLogger(zap.NewNop()))
	assert.Error(t, err)
}
