// Package schema defines the JSON wire payloads shared by the HTTP, MCP and CLI
// boundaries, and the boundary-level checks applied before the codec runs.
//
// A transcode response looks like:
//
//	{
//	  "ok": true,
//	  "mode": "encode",
//	  "text_utf8": "Hi",
//	  "dna": {
//	    "positive_strand": {"sequence": "TAGATGGT", "binary": "0100100001101001", "text": "Hi", "gc_content": 0.375},
//	    "negative_strand": {"sequence": "ATCTACCA", "binary": "0001110100111100", "text": "\u001d<", "gc_content": 0.375}
//	  }
//	}
//
// Failures carry only "ok": false and "error".
package schema
