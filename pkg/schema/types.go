package schema

// TranscodeRequest is the body of POST /api/transcode.
type TranscodeRequest struct {
	Mode string `json:"mode" jsonschema_description:"encode (text to DNA) or decode (DNA to text)"`
	Text string `json:"text" jsonschema_description:"UTF-8 text to encode, or the DNA sequence to decode"`
}

// EncodeRequest is the body of the legacy POST /encode route.
type EncodeRequest struct {
	Text string `json:"text"`
}

// DecodeRequest is the body of the legacy POST /decode route.
type DecodeRequest struct {
	DNA string `json:"dna"`
}

// TranscodeResponse is returned by every transcode boundary.
type TranscodeResponse struct {
	OK       bool    `json:"ok"`
	Mode     string  `json:"mode,omitempty"`
	TextUTF8 *string `json:"text_utf8,omitempty"`
	DNA      *DNA    `json:"dna,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// DNA groups both strands of a result.
type DNA struct {
	PositiveStrand StrandView `json:"positive_strand"`
	NegativeStrand StrandView `json:"negative_strand"`
}

// StrandView is the wire form of a domain.Strand.
type StrandView struct {
	Sequence  string  `json:"sequence"`
	Binary    string  `json:"binary"`
	Text      string  `json:"text"`
	GCContent float64 `json:"gc_content"`
	Error     string  `json:"error,omitempty"`
}

// ComplementResponse is returned by complement-only boundaries.
type ComplementResponse struct {
	OK       bool   `json:"ok"`
	Sequence string `json:"sequence,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ErrorResponse builds a failed TranscodeResponse.
func ErrorResponse(msg string) TranscodeResponse {
	return TranscodeResponse{OK: false, Error: msg}
}
