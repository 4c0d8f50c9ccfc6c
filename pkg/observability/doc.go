/*
Package observability exposes transcoder activity as Prometheus metrics.

Metrics are fed by domain.LifecycleHooks, so the codec and the pipeline stay
unaware of the metrics backend. Each Metrics value owns its own registry; nothing
is registered on the global default registerer.
*/
package observability
