package flv

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"flvtag/pkg/av"
)

// Demuxer decodes the tag carried by an av.Packet and keeps per type counters.
type Demuxer struct {
	registerer prometheus.Registerer

	decoded *prometheus.CounterVec // label: type
	failed  *prometheus.CounterVec // label: reason
}

const (
	reasonTruncated   = "truncated"
	reasonUnknownType = "unknown_type"
	reasonMismatch    = "type_mismatch"
)

// DecodeHeader decodes pkt.Data as one whole tag and fills the packet from it.
// A packet whose PacketType is already set must agree with the decoded tag type.
func (d *Demuxer) DecodeHeader(pkt *av.Packet) error {
	tag, err := Decode(pkt.Data)
	if err != nil {
		d.failed.WithLabelValues(failReason(err)).Inc()
		return errors.Wrap(err, "decode flv tag")
	}

	typ := av.AVPacketType(tag.Type())
	if pkt.PacketType != av.UnknownType && pkt.PacketType != typ {
		d.failed.WithLabelValues(reasonMismatch).Inc()
		return errors.Errorf("packet type %s, but tag type %s", pkt.PacketType, tag.Type())
	}

	pkt.PacketHeader = tag
	pkt.PacketType = typ
	pkt.Timestamp = tag.ExtendedTimestamp()
	pkt.StreamID = tag.StreamID()

	d.decoded.WithLabelValues(tag.Type().String()).Inc()

	return nil
}

func failReason(err error) string {
	switch errors.Cause(err) {
	case ErrTruncated:
		return reasonTruncated
	case ErrUnknownTagType:
		return reasonUnknownType
	default:
		return "other"
	}
}

func NewDemuxer(opts ...demuxerOption) (*Demuxer, error) {
	return (&Demuxer{}).loadOptions(opts...)
}

func (d *Demuxer) loadOptions(opts ...demuxerOption) (*Demuxer, error) {
	for _, opt := range opts {
		opt(d)
	}

	d.decoded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flv_tags_decoded_total",
		Help: "Total number of flv tags decoded, by tag type",
	}, []string{"type"})

	d.failed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "flv_tag_decode_errors_total",
		Help: "Total number of flv tags that failed to decode, by reason",
	}, []string{"reason"})

	if d.registerer != nil {
		for _, c := range []prometheus.Collector{d.decoded, d.failed} {
			if err := d.registerer.Register(c); err != nil {
				return nil, errors.Wrap(err, "register demuxer metrics")
			}
		}
	}

	return d, nil
}

type demuxerOption func(*Demuxer)

func WithDemuxerRegisterer(r prometheus.Registerer) demuxerOption {
	return func(d *Demuxer) {
		d.registerer = r
	}
}
