package catalog_fx

import (
	"go.uber.org/fx"

	"wanderlens/internal/catalog"
)

var Module = fx.Provide(catalog.Load)
