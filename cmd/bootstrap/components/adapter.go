package components

import (
	"experience-market/internal/infra/analytics"
	"experience-market/internal/infra/gateway"
	"experience-market/internal/usecase/commands"

	"go.uber.org/fx"
)

// AdapterModule wires the external-service clients: the payment gateway
// singleton and the fire-and-forget purchase reporter.
var AdapterModule = fx.Module("adapter",
	fx.Provide(
		fx.Annotate(
			gateway.NewAdapter,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			analytics.NewReporter,
			fx.As(new(commands.PurchaseReporter)),
		),
	),
)
