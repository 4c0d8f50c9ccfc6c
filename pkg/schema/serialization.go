package schema

import (
	"github.com/aretw0/helix/pkg/codec"
	"github.com/aretw0/helix/pkg/domain"
)

// ViewOption adjusts how a result is rendered on the wire.
type ViewOption func(*viewConfig)

type viewConfig struct {
	groupBinary bool
}

// WithGroupedBinary renders bit-strings as space-separated octets.
func WithGroupedBinary() ViewOption {
	return func(c *viewConfig) {
		c.groupBinary = true
	}
}

// FromResult maps a domain result to its wire form.
func FromResult(res *domain.Result, opts ...ViewOption) TranscodeResponse {
	var cfg viewConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	resp := TranscodeResponse{
		OK:   true,
		Mode: res.Mode.String(),
		DNA: &DNA{
			PositiveStrand: fromStrand(res.Positive, cfg),
			NegativeStrand: fromStrand(res.Negative, cfg),
		},
	}
	if res.Mode == domain.ModeEncode {
		input := res.Input
		resp.TextUTF8 = &input
	}
	return resp
}

func fromStrand(s domain.Strand, cfg viewConfig) StrandView {
	v := StrandView{
		Sequence:  s.Sequence,
		Binary:    s.Binary,
		Text:      s.Text,
		GCContent: s.GCContent,
	}
	if cfg.groupBinary {
		v.Binary = codec.GroupBits(s.Binary)
	}
	if s.Err != nil {
		v.Error = s.Err.Error()
	}
	return v
}
