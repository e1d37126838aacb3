//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"semrush-mcp/internal/domain"
	"semrush-mcp/internal/infrastructure"
	"semrush-mcp/internal/interfaces"
	"semrush-mcp/internal/interfaces/httpserver/routes"
)

func CreateApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		domain.DomainProvider,
		infrastructure.InfrastructureProvider,
		routes.RoutesProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
