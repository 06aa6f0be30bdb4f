package services

import (
	"context"

	"github.com/mkhumalo/site_safety_app/internal/core/domain"
)

// ReportingSvcFacade exposes the dashboard summary, the export artifact and
// the bulk clear.
type ReportingSvcFacade interface {
	// Summarize computes per-collection totals and last timestamps, the open
	// hazard count and the currently active permit counts.
	Summarize(ctx context.Context) (*domain.Summary, error)

	// Export serializes the full root document as pretty-printed JSON. The
	// session is persisted separately and never part of the export.
	Export(ctx context.Context) ([]byte, error)

	// ClearOperationalData empties every event collection, preserves users
	// and persists immediately.
	ClearOperationalData(ctx context.Context) error
}
