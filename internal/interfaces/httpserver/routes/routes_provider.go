package routes

import (
	"github.com/google/wire"

	"semrush-mcp/internal/interfaces/httpserver/routes/mcp"
)

// RoutesProvider provides all route dependencies
var RoutesProvider = wire.NewSet(
	mcp.NewReportMCP,
	mcp.NewMCPRoute,
)
