package inspect

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"flvtag/pkg/av/flv"
)

type TagReport struct {
	Source            string `yaml:"source"`
	Type              string `yaml:"type,omitempty"`
	Filtered          bool   `yaml:"filtered,omitempty"`
	DataSize          uint32 `yaml:"dataSize"`
	Timestamp         uint32 `yaml:"timestamp"`
	TimestampExtended uint8  `yaml:"timestampExtended"`
	ExtendedTimestamp uint32 `yaml:"extendedTimestamp"`
	StreamID          uint32 `yaml:"streamID"`
	PayloadSize       int    `yaml:"payloadSize"`

	Video *VideoReport `yaml:"video,omitempty"`
	Audio *AudioReport `yaml:"audio,omitempty"`
	Meta  *OnMetaData  `yaml:"meta,omitempty"`

	Error string `yaml:"error,omitempty"`
}

type VideoReport struct {
	FrameType             string `yaml:"frameType"`
	SupportedFrameType    bool   `yaml:"supportedFrameType"`
	Codec                 string `yaml:"codec"`
	AVCPacketType         string `yaml:"avcPacketType,omitempty"`
	CompositionTime       *int32 `yaml:"compositionTime,omitempty"`
	PresentationTimestamp int64  `yaml:"pts"`
}

type AudioReport struct {
	Format        string `yaml:"format"`
	SampleRate    int    `yaml:"sampleRate"`
	SampleSize    string `yaml:"sampleSize"`
	Channels      string `yaml:"channels"`
	AACPacketType string `yaml:"aacPacketType,omitempty"`
}

func (r *TagReport) fill(tag flv.Tag) {
	r.Type = tag.Type().String()
	r.Filtered = tag.Filtered()
	r.DataSize = tag.DataSize()
	r.Timestamp = tag.Timestamp()
	r.TimestampExtended = tag.TimestampExtended()
	r.ExtendedTimestamp = tag.ExtendedTimestamp()
	r.StreamID = tag.StreamID()
	r.PayloadSize = len(tag.Payload())

	switch t := tag.(type) {
	case *flv.VideoTag:
		v := &VideoReport{
			FrameType:             t.FrameType().String(),
			SupportedFrameType:    t.IsSupportedFrameType(),
			Codec:                 t.CodecID().String(),
			PresentationTimestamp: t.PresentationTimestamp(),
		}
		if pt, ok := t.AVCPacketType(); ok {
			v.AVCPacketType = pt.String()
		}
		if cts, ok := t.CompositionTime(); ok {
			v.CompositionTime = &cts
		}
		r.Video = v
	case *flv.AudioTag:
		a := &AudioReport{
			Format:     t.SoundFormat().String(),
			SampleRate: t.SampleRateHz(),
			SampleSize: t.SoundSize().String(),
			Channels:   t.SoundType().String(),
		}
		if pt, ok := t.AACPacketType(); ok {
			a.AACPacketType = pt.String()
		}
		r.Audio = a
	}
}

// WriteReport writes reports as one yaml document to ReportPath, or to the configured output.
func (i *Inspector) WriteReport(reports []*TagReport) error {
	w := i.out
	if i.config.ReportPath != "" {
		f, err := os.Create(i.config.ReportPath)
		if err != nil {
			return errors.Wrap(err, "create report file")
		}
		defer f.Close()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return errors.Wrap(err, "encode yaml report")
	}

	return errors.Wrap(enc.Close(), "flush yaml report")
}
