// Package mcp exposes the transcoder as Model Context Protocol tools
// (encode_text, decode_dna, complement_dna) over stdio or SSE.
package mcp
