package inspect

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/gwuhaolin/livego/protocol/amf"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"flvtag/pkg/av"
	"flvtag/pkg/av/flv"
)

// Inspector decodes raw tag buffers and reports their fields.
// It owns the byte sources (files, hex strings); decoding itself is flv.Decode.
type Inspector struct {
	configPath string
	config     *config
	logger     *zap.Logger
	registerer prometheus.Registerer
	out        io.Writer

	demuxer    *flv.Demuxer // 仅解析tag header
	amfDecoder *amf.Decoder
}

// InspectFile treats the whole file as one tag.
func (i *Inspector) InspectFile(path string) (*TagReport, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read tag file %s", path)
	}

	return i.Inspect(path, b)
}

// InspectHex decodes a hex dump of one tag, whitespace is ignored.
func (i *Inspector) InspectHex(s string) (*TagReport, error) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, errors.Wrap(err, "decode hex tag")
	}

	return i.Inspect("hex", b)
}

// Inspect decodes b as one tag. A decode failure still yields a report carrying the error.
func (i *Inspector) Inspect(source string, b []byte) (*TagReport, error) {
	pkt := av.NewPacket(av.WithPacketData(b))
	report := &TagReport{Source: source}

	if err := i.demuxer.DecodeHeader(pkt); err != nil {
		report.Error = err.Error()
		i.logger.Warn("decode tag", zap.String("source", source), zap.Int("len", len(b)), zap.Error(err))
		return report, errors.Wrapf(err, "inspect %s", source)
	}

	tag := pkt.PacketHeader.(flv.Tag)
	report.fill(tag)

	switch t := tag.(type) {
	case *flv.VideoTag:
		if !t.IsSupportedFrameType() {
			i.logger.Warn("unsupported video frame type",
				zap.String("source", source), zap.Uint8("frameType", uint8(t.FrameType())))
		}
	case *flv.MetaTag:
		if i.config.DecodeMeta {
			meta, err := i.decodeMeta(t.Payload())
			if err != nil {
				// payload stays opaque, the tag itself decoded fine
				i.logger.Warn("decode script data", zap.String("source", source), zap.Error(err))
			} else {
				report.Meta = meta
			}
		}
	}

	i.logger.Debug("tag decoded",
		zap.String("source", source),
		zap.Stringer("type", tag.Type()),
		zap.Uint32("dts", tag.ExtendedTimestamp()),
		zap.Uint32("dataSize", tag.DataSize()),
	)

	return report, nil
}

func (i *Inspector) Logger() *zap.Logger {
	return i.logger
}

func (i *Inspector) Close() error {
	return i.logger.Sync()
}

func New(opts ...Option) (*Inspector, error) {
	i, err := (&Inspector{}).loadOptions(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load options")
	}

	return i, nil
}

func (i *Inspector) loadOptions(opts ...Option) (*Inspector, error) {
	for _, opt := range opts {
		opt(i)
	}

	if i.configPath == "" {
		var err error
		if i.configPath, err = getAbsConfigPath(); err != nil {
			return nil, errors.Wrap(err, "get abs config path while config path not assigned")
		}
	}
	if err := i.loadConfig(i.configPath); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if i.logger == nil {
		if err := i.initLogger(); err != nil {
			return nil, errors.Wrap(err, "init logger")
		}
	}

	if i.out == nil {
		i.out = os.Stdout
	}

	if i.demuxer == nil {
		d, err := flv.NewDemuxer(flv.WithDemuxerRegisterer(i.registerer))
		if err != nil {
			return nil, errors.Wrap(err, "create demuxer")
		}
		i.demuxer = d
	}

	if i.amfDecoder == nil {
		i.amfDecoder = amf.NewDecoder()
	}

	return i, nil
}

type Option func(*Inspector)

func WithConfigPath(p string) Option {
	return func(i *Inspector) {
		i.configPath = p
	}
}

// WithLogger skips building the rotated file logger from config.
func WithLogger(l *zap.Logger) Option {
	return func(i *Inspector) {
		i.logger = l
	}
}

func WithRegisterer(r prometheus.Registerer) Option {
	return func(i *Inspector) {
		i.registerer = r
	}
}

// WithOutput sets where reports go when ReportPath is not configured.
func WithOutput(w io.Writer) Option {
	return func(i *Inspector) {
		i.out = w
	}
}
