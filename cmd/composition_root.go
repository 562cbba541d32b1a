package cmd

import (
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/memory/orderregistry"
	"fooddelivery/internal/core/application/sources"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/streaming"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"github.com/benbjohnson/clock"
)

// CompositionRoot constructs and wires every service of the application.
// The registry and the demand sources are shared singletons; handlers are
// cheap values created per consumer.
type CompositionRoot struct {
	config Config
	logger *slog.Logger
	clock  clock.Clock

	registry        ports.OrderRegistry
	proactiveSource *sources.ProactiveMessageSource
	availableSource *sources.AvailableOrderSource
}

// NewCompositionRoot builds the shared state of the application from the
// configuration.
func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	clk := clock.New()
	registry := orderregistry.NewRegistry(clk)

	return CompositionRoot{
		config:   config,
		logger:   logger,
		clock:    clk,
		registry: registry,
		proactiveSource: sources.NewProactiveMessageSource(
			services.NewChatResponder(), clk, config.ProactiveDelay, logger),
		availableSource: sources.NewAvailableOrderSource(registry, nil, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.registry, c.clock)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateTrackOrderHandler() streaming.TrackOrderHandler {
	return streaming.NewTrackOrderHandler(c.registry, c.clock, c.config.TrackInterval)
}

func (c *CompositionRoot) CreatePrepareOrderHandler() streaming.PrepareOrderHandler {
	return streaming.NewPrepareOrderHandler(c.registry, c.logger)
}

func (c *CompositionRoot) CreateUpdateLocationHandler() streaming.UpdateLocationHandler {
	return streaming.NewUpdateLocationHandler(c.registry, c.logger)
}

func (c *CompositionRoot) CreateOrderChatHandler() streaming.OrderChatHandler {
	return streaming.NewOrderChatHandler(
		c.proactiveSource, c.clock, c.config.MaxDemand, c.config.ChatPollInterval)
}

func (c *CompositionRoot) CreateStreamAvailableOrdersHandler() streaming.StreamAvailableOrdersHandler {
	return streaming.NewStreamAvailableOrdersHandler(
		c.availableSource, c.clock, c.config.AvailablePollInterval)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.registry, c.clock, c.config.KitchenPrepTime, c.config.StaleAssignmentTimeout, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateTrackOrderHandler(),
		c.CreatePrepareOrderHandler(),
		c.CreateUpdateLocationHandler(),
		c.CreateOrderChatHandler(),
		c.CreateStreamAvailableOrdersHandler(),
		c.registry,
		c.logger,
	)
}
