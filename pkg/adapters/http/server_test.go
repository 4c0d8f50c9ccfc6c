package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aretw0/helix"
	"github.com/aretw0/helix/internal/logging"
	"github.com/aretw0/helix/pkg/domain"
	"github.com/aretw0/helix/pkg/schema"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingEngine returns a fixed error from every call.
type failingEngine struct {
	err error
}

func (f failingEngine) Encode(context.Context, string) (*domain.Result, error) { return nil, f.err }
func (f failingEngine) Decode(context.Context, string) (*domain.Result, error) { return nil, f.err }
func (f failingEngine) Transcode(context.Context, domain.Mode, string) (*domain.Result, error) {
	return nil, f.err
}
func (f failingEngine) Complement(context.Context, string) (string, error) { return "", f.err }

func newTestHandler(opts ...Option) http.Handler {
	return NewHandler(helix.New(), append([]Option{WithLogger(logging.NewNop())}, opts...)...)
}

func do(t *testing.T, h http.Handler, method, target string, body any) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return req, rec
}

// validateResponse checks a recorded response against the embedded OpenAPI document.
func validateResponse(t *testing.T, req *http.Request, rec *httptest.ResponseRecorder) {
	t.Helper()
	doc, err := GetSwagger()
	require.NoError(t, err)

	item := doc.Paths.Value(req.URL.Path)
	require.NotNil(t, item, "path %s not documented", req.URL.Path)
	op := item.GetOperation(req.Method)
	require.NotNil(t, op, "%s %s not documented", req.Method, req.URL.Path)

	opts := &openapi3filter.Options{IncludeResponseStatus: true}
	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: req,
			Route: &routers.Route{
				Spec:      doc,
				Path:      req.URL.Path,
				PathItem:  item,
				Method:    req.Method,
				Operation: op,
			},
			Options: opts,
		},
		Status:  rec.Code,
		Header:  rec.Header(),
		Options: opts,
	}
	input.SetBodyBytes(rec.Body.Bytes())
	require.NoError(t, openapi3filter.ValidateResponse(context.Background(), input))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) schema.TranscodeResponse {
	t.Helper()
	var resp schema.TranscodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

func TestPostTranscode_Encode(t *testing.T) {
	h := newTestHandler()
	req, rec := do(t, h, http.MethodPost, "/api/transcode", schema.TranscodeRequest{Mode: "encode", Text: "Hi"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	validateResponse(t, req, rec)

	text := "Hi"
	want := schema.TranscodeResponse{
		OK:       true,
		Mode:     "encode",
		TextUTF8: &text,
		DNA: &schema.DNA{
			PositiveStrand: schema.StrandView{Sequence: "TAGATGGT", Binary: "0100100001101001", Text: "Hi", GCContent: 0.375},
			NegativeStrand: schema.StrandView{Sequence: "ATCTACCA", Binary: "0001110100111100", Text: "\x1d<", GCContent: 0.375},
		},
	}
	if diff := cmp.Diff(want, decodeResponse(t, rec)); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func TestPostTranscode_Decode(t *testing.T) {
	h := newTestHandler()
	req, rec := do(t, h, http.MethodPost, "/api/transcode", schema.TranscodeRequest{Mode: "decode", Text: "  tagatggt\n"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	validateResponse(t, req, rec)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.OK)
	assert.Nil(t, resp.TextUTF8, "text_utf8 is only echoed for encode")
	assert.Equal(t, "Hi", resp.DNA.PositiveStrand.Text)
	assert.Equal(t, "TAGATGGT", resp.DNA.PositiveStrand.Sequence)
}

func TestPostTranscode_NegativeStrandFailureIsNotFatal(t *testing.T) {
	h := newTestHandler()
	req, rec := do(t, h, http.MethodPost, "/api/transcode", schema.TranscodeRequest{Mode: "encode", Text: "é"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	validateResponse(t, req, rec)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "CAACGGGT", resp.DNA.PositiveStrand.Sequence)
	assert.Empty(t, resp.DNA.PositiveStrand.Error)
	assert.Equal(t, "GTTGCCCA", resp.DNA.NegativeStrand.Sequence)
	assert.Contains(t, resp.DNA.NegativeStrand.Error, "invalid UTF-8")
}

func TestPostTranscode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   any
		status int
		msg    string
	}{
		{"empty dna", "/api/transcode", schema.TranscodeRequest{Mode: "decode", Text: "   "}, http.StatusBadRequest, schema.MsgEmptySequence},
		{"invalid characters", "/api/transcode", schema.TranscodeRequest{Mode: "decode", Text: "ACGU"}, http.StatusBadRequest, schema.MsgInvalidCharacters},
		{"unknown mode", "/api/transcode", schema.TranscodeRequest{Mode: "reverse", Text: "x"}, http.StatusBadRequest, schema.MsgUnknownMode},
		{"missing mode", "/api/transcode", map[string]string{"text": "x"}, http.StatusBadRequest, schema.MsgUnknownMode},
		{"malformed json", "/api/transcode", `{"mode":`, http.StatusBadRequest, "invalid request body"},
		// 0xFF 0xFF is not valid UTF-8.
		{"positive strand utf8", "/api/transcode", schema.TranscodeRequest{Mode: "decode", Text: "CCCCCCCC"}, http.StatusInternalServerError, "invalid UTF-8"},
		{"legacy decode empty", "/decode", schema.DecodeRequest{DNA: ""}, http.StatusBadRequest, schema.MsgEmptySequence},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := do(t, h, http.MethodPost, tt.target, tt.body)

			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			validateResponse(t, req, rec)
			resp := decodeResponse(t, rec)
			assert.False(t, resp.OK)
			assert.Contains(t, resp.Error, tt.msg)
		})
	}
}

func TestPostTranscode_TooLarge(t *testing.T) {
	h := newTestHandler(WithMaxInputSize(8))

	req, rec := do(t, h, http.MethodPost, "/api/transcode", schema.TranscodeRequest{Mode: "encode", Text: "123456789"})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	validateResponse(t, req, rec)

	huge := `{"mode":"encode","text":"` + strings.Repeat("a", 8*2+bodyOverhead) + `"}`
	req, rec = do(t, h, http.MethodPost, "/api/transcode", huge)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	validateResponse(t, req, rec)
}

func TestGetTranscode(t *testing.T) {
	h := newTestHandler()
	q := url.Values{"mode": {"encode"}, "text": {"Hi there"}}
	req, rec := do(t, h, http.MethodGet, "/api/transcode?"+q.Encode(), nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	validateResponse(t, req, rec)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.TextUTF8)
	assert.Equal(t, "Hi there", *resp.TextUTF8)
	assert.Equal(t, "Hi there", resp.DNA.PositiveStrand.Text)

	req, rec = do(t, h, http.MethodGet, "/api/transcode?text=ACGT", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	validateResponse(t, req, rec)
}

func TestLegacyRoutes(t *testing.T) {
	h := newTestHandler()

	req, rec := do(t, h, http.MethodPost, "/encode", schema.EncodeRequest{Text: "Hi"})
	require.Equal(t, http.StatusOK, rec.Code)
	validateResponse(t, req, rec)
	enc := decodeResponse(t, rec)
	assert.Equal(t, "TAGATGGT", enc.DNA.PositiveStrand.Sequence)

	req, rec = do(t, h, http.MethodPost, "/decode", schema.DecodeRequest{DNA: enc.DNA.PositiveStrand.Sequence})
	require.Equal(t, http.StatusOK, rec.Code)
	validateResponse(t, req, rec)
	assert.Equal(t, "Hi", decodeResponse(t, rec).DNA.PositiveStrand.Text)
}

func TestInternalErrorStatus(t *testing.T) {
	h := NewHandler(failingEngine{err: errors.New("boom")}, WithLogger(logging.NewNop()))
	req, rec := do(t, h, http.MethodPost, "/encode", schema.EncodeRequest{Text: "x"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	validateResponse(t, req, rec)
	assert.Equal(t, schema.ErrorResponse("boom"), decodeResponse(t, rec))
}

func TestHealthAndInfo(t *testing.T) {
	h := newTestHandler()

	req, rec := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	validateResponse(t, req, rec)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	req, rec = do(t, h, http.MethodGet, "/info", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	validateResponse(t, req, rec)

	var info map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "helix-http", info["app"])
	assert.Equal(t, strings.TrimSpace(helix.Version), info["version"])
	assert.Equal(t, "1.0.0", info["api_version"])
}

func TestOpenAPIDocument(t *testing.T) {
	h := newTestHandler()
	_, rec := do(t, h, http.MethodGet, "/openapi.yaml", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/api/transcode")
}

func TestRequestIDAndCORS(t *testing.T) {
	h := newTestHandler()

	_, rec := do(t, h, http.MethodGet, "/health", nil)
	_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
	assert.NoError(t, err)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodOptions, "/api/transcode", nil)
	req.Header.Set("X-Request-ID", id)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, rec.Header().Get("X-Request-ID"))

	noCORS := newTestHandler(WithCORS(false))
	_, rec = do(t, noCORS, http.MethodGet, "/health", nil)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsRoute(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("helix_up 1\n"))
	})

	h := newTestHandler(WithMetrics("", metrics))
	_, rec := do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "helix_up 1\n", rec.Body.String())

	_, rec = do(t, newTestHandler(), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
