package runner_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/helix"
	"github.com/aretw0/helix/pkg/domain"
	"github.com/aretw0/helix/pkg/runner"
	"github.com/aretw0/helix/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run_Text(t *testing.T) {
	var out bytes.Buffer
	r := runner.NewRunner(helix.New(), runner.NewTextHandler(&out))

	require.NoError(t, r.Run(context.Background(), domain.ModeEncode, "Hi"))

	got := out.String()
	assert.Contains(t, got, "positive strand")
	assert.Contains(t, got, "sequence: TAGATGGT")
	assert.Contains(t, got, "binary:   0100100001101001")
	assert.Contains(t, got, `text:     "Hi"`)
	assert.Contains(t, got, "negative strand")
	assert.Contains(t, got, "sequence: ATCTACCA")
}

func TestRunner_Run_JSONGrouped(t *testing.T) {
	var out bytes.Buffer
	h := runner.NewJSONHandler(&out)
	h.Grouped = true
	r := runner.NewRunner(helix.New(), h)

	require.NoError(t, r.Run(context.Background(), domain.ModeDecode, "tagatggt"))

	var resp schema.TranscodeResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "decode", resp.Mode)
	assert.Equal(t, "Hi", resp.DNA.PositiveStrand.Text)
	assert.Equal(t, "01001000 01101001", resp.DNA.PositiveStrand.Binary)
}

func TestRunner_Run_Table(t *testing.T) {
	var out bytes.Buffer
	r := runner.NewRunner(helix.New(), runner.NewTableHandler(&out))

	require.NoError(t, r.Run(context.Background(), domain.ModeEncode, "é"))

	got := out.String()
	assert.Contains(t, got, "STRAND")
	assert.Contains(t, got, "CAACGGGT")
	assert.Contains(t, got, "invalid UTF-8", "negative strand failure is shown, not fatal")
}

func TestRunner_Run_MarkdownUsesRenderer(t *testing.T) {
	var out bytes.Buffer
	var rendered string
	h := runner.NewMarkdownHandler(&out, func(md string) (string, error) {
		rendered = md
		return "RENDERED", nil
	})
	r := runner.NewRunner(helix.New(), h)

	require.NoError(t, r.Run(context.Background(), domain.ModeEncode, "Hi"))

	assert.Equal(t, "RENDERED", out.String())
	assert.Contains(t, rendered, "# Encode")
	assert.Contains(t, rendered, "`TAGATGGT`")
}

func TestRunner_Run_Errors(t *testing.T) {
	var out bytes.Buffer
	r := runner.NewRunner(helix.New(), runner.NewTextHandler(&out))

	err := r.Run(context.Background(), domain.ModeDecode, "ACGX")
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)

	r.MaxInputSize = 4
	err = r.Run(context.Background(), domain.ModeEncode, "too long")
	assert.ErrorIs(t, err, runner.ErrInputTooLarge)

	assert.Empty(t, out.String())
}

func TestRunner_Run_Mermaid(t *testing.T) {
	var out bytes.Buffer
	h, err := runner.NewHandler(runner.FormatMermaid, &out, false, nil)
	require.NoError(t, err)
	r := runner.NewRunner(helix.New(), h)

	require.NoError(t, r.Run(context.Background(), domain.ModeEncode, "Hi"))
	assert.Contains(t, out.String(), `p0["TAGA"]`)
}

func TestRunner_RunComplement(t *testing.T) {
	var out bytes.Buffer
	r := runner.NewRunner(helix.New(), runner.NewTextHandler(&out))

	require.NoError(t, r.RunComplement(context.Background(), "gattaca"))
	assert.Equal(t, "CTAATGT\n", out.String())
}

func TestNewHandler(t *testing.T) {
	for _, format := range []string{"text", "json", "table", "markdown", "md", "mermaid", ""} {
		h, err := runner.NewHandler(format, &bytes.Buffer{}, false, nil)
		require.NoError(t, err, format)
		assert.NotNil(t, h)
	}

	_, err := runner.NewHandler("yaml", &bytes.Buffer{}, false, nil)
	assert.Error(t, err)
}

func TestReadPayload(t *testing.T) {
	got, err := runner.ReadPayload([]string{"hello", "world"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	got, err = runner.ReadPayload(nil, strings.NewReader("piped\n"))
	require.NoError(t, err)
	assert.Equal(t, "piped", got)

	got, err = runner.ReadPayload(nil, strings.NewReader("two\nlines\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "two\nlines", got)
}
