package flv

// MetaTag is a script data tag. The payload is the AMF encoded block, left undecoded.
type MetaTag struct {
	TagHeader
}

func (t *MetaTag) isTag() {}

func (t *MetaTag) decode(b []byte) error {
	return t.TagHeader.decode(b)
}
