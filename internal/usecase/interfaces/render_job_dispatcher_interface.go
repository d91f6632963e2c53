package interfaces

import (
	"context"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/domain/entities"
)

// IRenderJobDispatcher abstracts the external render job service (QFS).
//
// Dispatch is a single attempt: a non-2xx answer comes back as a rejected
// RenderJobDispatch, not an error. The error return is reserved for
// transport-level failures (connection refused, timeout).
//
//go:generate mockgen -source=render_job_dispatcher_interface.go -destination=mocks/render_job_dispatcher_interface_mock.go -package=mocks
type IRenderJobDispatcher interface {
	Dispatch(ctx context.Context, configuration entities.Configuration, quotationID string) (entities.RenderJobDispatch, error)
}
