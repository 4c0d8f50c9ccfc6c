package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aretw0/helix/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResult_Encode(t *testing.T) {
	res := &domain.Result{
		Mode:  domain.ModeEncode,
		Input: "Hi",
		Positive: domain.Strand{
			Sequence: "TAGATGGT", Binary: "0100100001101001", Text: "Hi", GCContent: 0.375,
		},
		Negative: domain.Strand{
			Sequence: "ATCTACCA", Binary: "0001110100111100", Err: domain.ErrInvalidUTF8,
		},
	}

	resp := FromResult(res)
	require.True(t, resp.OK)
	require.NotNil(t, resp.TextUTF8)
	assert.Equal(t, "Hi", *resp.TextUTF8)
	assert.Equal(t, "encode", resp.Mode)
	assert.Equal(t, "TAGATGGT", resp.DNA.PositiveStrand.Sequence)
	assert.Empty(t, resp.DNA.PositiveStrand.Error)
	assert.Equal(t, "invalid UTF-8", resp.DNA.NegativeStrand.Error)

	grouped := FromResult(res, WithGroupedBinary())
	assert.Equal(t, "01001000 01101001", grouped.DNA.PositiveStrand.Binary)
}

func TestFromResult_DecodeOmitsTextUTF8(t *testing.T) {
	resp := FromResult(&domain.Result{Mode: domain.ModeDecode, Input: "AAAA"})

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "text_utf8")
	assert.Contains(t, string(data), `"positive_strand"`)
}

func TestFromResult_EncodeEmptyKeepsTextUTF8(t *testing.T) {
	data, err := json.Marshal(FromResult(&domain.Result{Mode: domain.ModeEncode}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"text_utf8":""`)
}

func TestErrorResponse_JSON(t *testing.T) {
	data, err := json.Marshal(ErrorResponse("unknown mode"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": false, "error": "unknown mode"}`, string(data))
}

func TestParseMode(t *testing.T) {
	mode, err := TranscodeRequest{Mode: "decode"}.ParseMode()
	require.NoError(t, err)
	assert.Equal(t, domain.ModeDecode, mode)

	_, err = TranscodeRequest{Mode: "Encode"}.ParseMode()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgUnknownMode, verr.Reason)
	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestCheckDNA(t *testing.T) {
	assert.NoError(t, CheckDNA("text", "acgtACGT"))
	assert.NoError(t, CheckDNA("text", "  GATTACA\n"))

	err := CheckDNA("text", " \n")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgEmptySequence, verr.Reason)
	assert.ErrorIs(t, err, domain.ErrEmptySequence)

	err = CheckDNA("dna", "ACGU")
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgInvalidCharacters, verr.Reason)
	assert.Equal(t, "dna", verr.Key)
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
}
