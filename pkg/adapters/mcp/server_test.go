package mcp

import (
	"context"
	"testing"

	"github.com/aretw0/helix"
	"github.com/aretw0/helix/pkg/domain"
	"github.com/aretw0/helix/pkg/runner"
	"github.com/aretw0/helix/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func TestHandleEncode(t *testing.T) {
	s := NewServer(helix.New())
	args := map[string]any{"text": "Hi", "group": true}

	resp, err := s.handleEncode(context.Background(), callRequest("encode_text", args), args)
	require.NoError(t, err)

	assert.True(t, resp.OK)
	assert.Equal(t, "encode", resp.Mode)
	require.NotNil(t, resp.TextUTF8)
	assert.Equal(t, "Hi", *resp.TextUTF8)
	assert.Equal(t, "TAGATGGT", resp.DNA.PositiveStrand.Sequence)
	assert.Equal(t, "01001000 01101001", resp.DNA.PositiveStrand.Binary)
	assert.Equal(t, "ATCTACCA", resp.DNA.NegativeStrand.Sequence)
}

func TestHandleDecode(t *testing.T) {
	s := NewServer(helix.New())

	args := map[string]any{"sequence": " tagatggt "}
	resp, err := s.handleDecode(context.Background(), callRequest("decode_dna", args), args)
	require.NoError(t, err)
	assert.Equal(t, "Hi", resp.DNA.PositiveStrand.Text)

	args = map[string]any{"sequence": "ACGN"}
	_, err = s.handleDecode(context.Background(), callRequest("decode_dna", args), args)
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, schema.MsgInvalidCharacters, verr.Reason)
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)

	args = map[string]any{}
	_, err = s.handleDecode(context.Background(), callRequest("decode_dna", args), args)
	assert.ErrorIs(t, err, domain.ErrEmptySequence)
}

func TestHandleComplement(t *testing.T) {
	s := NewServer(helix.New())

	args := map[string]any{"sequence": "gattaca"}
	resp, err := s.handleComplement(context.Background(), callRequest("complement_dna", args), args)
	require.NoError(t, err)
	assert.Equal(t, ComplementResult{Sequence: "GATTACA", Complement: "CTAATGT"}, resp)

	args = map[string]any{"sequence": "GATXACA"}
	_, err = s.handleComplement(context.Background(), callRequest("complement_dna", args), args)
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
}

func TestInputLimit(t *testing.T) {
	s := NewServer(helix.New(), WithMaxInputSize(2))

	args := map[string]any{"text": "abc"}
	_, err := s.handleEncode(context.Background(), callRequest("encode_text", args), args)
	assert.ErrorIs(t, err, runner.ErrInputTooLarge)
}

func TestStructuredHandlerReportsToolError(t *testing.T) {
	s := NewServer(helix.New())
	handler := mcp.NewStructuredToolHandler(s.handleDecode)

	args := map[string]any{"sequence": "CCCCCCCC"}
	res, err := handler(context.Background(), callRequest("decode_dna", args))
	require.NoError(t, err)
	assert.True(t, res.IsError, "a positive strand that is not UTF-8 is a tool error")

	args = map[string]any{"sequence": "TAGATGGT"}
	res, err = handler(context.Background(), callRequest("decode_dna", args))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.NotNil(t, res.StructuredContent)
}
