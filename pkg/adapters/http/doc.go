// Package http exposes the transcoder as a JSON API on a chi router.
//
// Routes are described by the embedded openapi.yaml, which is served at
// /openapi.yaml and whose version is reported by /info.
package http
