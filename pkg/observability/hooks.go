package observability

import (
	"context"

	"github.com/aretw0/helix/pkg/domain"
)

// ChainHooks fans each event out to every non-nil callback, in order.
func ChainHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTranscodeStart: func(ctx context.Context, e *domain.TranscodeEvent) {
			for _, h := range hooks {
				if h.OnTranscodeStart != nil {
					h.OnTranscodeStart(ctx, e)
				}
			}
		},
		OnTranscodeEnd: func(ctx context.Context, e *domain.TranscodeEvent) {
			for _, h := range hooks {
				if h.OnTranscodeEnd != nil {
					h.OnTranscodeEnd(ctx, e)
				}
			}
		},
		OnStrandFailure: func(ctx context.Context, e *domain.StrandEvent) {
			for _, h := range hooks {
				if h.OnStrandFailure != nil {
					h.OnStrandFailure(ctx, e)
				}
			}
		},
	}
}
