// Package runtime composes the codec primitives into the encode and decode pipelines
// and emits lifecycle events around each run.
package runtime
