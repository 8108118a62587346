package bootstrap

import (
	"experience-market/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.AdapterModule,
	components.UseCaseModule,
	components.HandlerModule,
)
