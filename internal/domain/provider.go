package domain

import (
	"github.com/google/wire"

	"semrush-mcp/internal/domain/semrush"
)

// DomainProvider provides all domain services
var DomainProvider = wire.NewSet(
	semrush.NewReportService,
)
