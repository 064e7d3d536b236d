package inspect

import (
	"bytes"
	"io"

	"github.com/gwuhaolin/livego/protocol/amf"
	"github.com/pkg/errors"
)

// OnMetaData is the subset of the onMetaData script object worth reporting.
type OnMetaData struct {
	Duration float64 `yaml:"duration,omitempty"`
	Filesize float64 `yaml:"filesize,omitempty"`
	Encoder  string  `yaml:"encoder,omitempty"`

	Width         float64 `yaml:"width,omitempty"`
	Height        float64 `yaml:"height,omitempty"`
	VideoCodecID  int     `yaml:"videocodecid,omitempty"`
	Framerate     float64 `yaml:"framerate,omitempty"`
	VideodataRate float64 `yaml:"videodatarate,omitempty"`

	AudioCodecID    int     `yaml:"audiocodecid,omitempty"`
	Audiochannels   int     `yaml:"audiochannels,omitempty"`
	Stereo          bool    `yaml:"stereo,omitempty"`
	Audiodatarate   float64 `yaml:"audiodatarate,omitempty"`
	Audiosamplerate float64 `yaml:"audiosamplerate,omitempty"`
	Audiosamplesize float64 `yaml:"audiosamplesize,omitempty"`
}

var errNotOnMetaData = errors.New("script data is not onMetaData")

// decodeMeta decodes an AMF0 script data payload, "@setDataFrame" prefixed or not.
func (i *Inspector) decodeMeta(payload []byte) (*OnMetaData, error) {
	p, err := amf.MetaDataReform(payload, amf.DEL)
	if err != nil {
		return nil, errors.Wrap(err, "strip @setDataFrame")
	}

	vs, err := i.amfDecoder.DecodeBatch(bytes.NewReader(p), amf.Version(amf.AMF0))
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode amf0 script data")
	}

	if len(vs) < 2 {
		return nil, errNotOnMetaData
	}
	if name, ok := vs[0].(string); !ok || name != "onMetaData" {
		return nil, errNotOnMetaData
	}

	meta := new(OnMetaData)
	for _, v := range vs[1:] {
		if obj, ok := v.(amf.Object); ok {
			meta.fill(obj)
		}
	}

	return meta, nil
}

func (m *OnMetaData) fill(v amf.Object) {
	if duration, ok := v["duration"].(float64); ok {
		m.Duration = duration
	}

	if fileSize, ok := v["filesize"].(float64); ok {
		m.Filesize = fileSize
	}

	if encoder, ok := v["encoder"].(string); ok {
		m.Encoder = encoder
	}

	if width, ok := v["width"].(float64); ok {
		m.Width = width
	}

	if height, ok := v["height"].(float64); ok {
		m.Height = height
	}

	if videocodecid, ok := v["videocodecid"].(float64); ok {
		m.VideoCodecID = int(videocodecid)
	}

	if framerate, ok := v["framerate"].(float64); ok {
		m.Framerate = framerate
	}

	if videodatarate, ok := v["videodatarate"].(float64); ok {
		m.VideodataRate = videodatarate
	}

	if audiocodecid, ok := v["audiocodecid"].(float64); ok {
		m.AudioCodecID = int(audiocodecid)
	}

	if audiochannels, ok := v["audiochannels"].(float64); ok {
		m.Audiochannels = int(audiochannels)
	}

	if stereo, ok := v["stereo"].(bool); ok {
		m.Stereo = stereo
	}

	if audiodatarate, ok := v["audiodatarate"].(float64); ok {
		m.Audiodatarate = audiodatarate
	}

	if audiosamplerate, ok := v["audiosamplerate"].(float64); ok {
		m.Audiosamplerate = audiosamplerate
	}

	if audiosamplesize, ok := v["audiosamplesize"].(float64); ok {
		m.Audiosamplesize = audiosamplesize
	}
}
