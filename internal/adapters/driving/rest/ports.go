package rest

import (
	"github.com/tracedocs/ddsdocs-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the REST server.
type Ports struct {
	// Query answers questions over the knowledge base.
	Query driving.QueryService

	// Ingest reports pipeline status on /info. Optional.
	Ingest driving.IngestService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
