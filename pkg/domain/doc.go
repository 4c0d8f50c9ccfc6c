/*
Package domain contains the core value types and error taxonomy for the Helix transcoder.

It defines what flows through the pipeline (strands, results, modes) and the typed
failures the codec reports. This package is kept pure and free of external
dependencies like I/O or logging, following Hexagonal Architecture principles.

# Key Entities

  - Mode: The direction of a transcode request (encode or decode).
  - Strand: One DNA sequence together with its bit-string and text reconstruction.
  - Result: The positive and negative strands produced by a single request.
  - CodecError: A positioned codec failure wrapping one of the Err* sentinels.
*/
package domain
