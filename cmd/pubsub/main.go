package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shuldan/pubsub/pkg/app"
	"github.com/shuldan/pubsub/pkg/config"
	"github.com/shuldan/pubsub/pkg/contracts"
	"github.com/shuldan/pubsub/pkg/events"
	"github.com/shuldan/pubsub/pkg/logger"
)

type printer struct {
	name string
}

func (p *printer) Handle(_ context.Context, args ...any) error {
	fmt.Printf("%s%v\n", p.name, args)
	return nil
}

type scenario struct{}

func (s *scenario) Name() string                         { return "scenario" }
func (s *scenario) Register(contracts.DIContainer) error { return nil }
func (s *scenario) Stop(contracts.AppContext) error      { return nil }

func (s *scenario) Start(ctx contracts.AppContext) error {
	defer ctx.Stop()

	bus, err := events.Resolve(ctx.Container())
	if err != nil {
		return err
	}

	a, b := &printer{name: "a"}, &printer{name: "b"}
	bus.Listen("evt", a)
	bus.Listen("evt", b)

	if _, err := bus.Trigger(ctx.Ctx(), "evt", 1); err != nil {
		return err
	}

	bus.Remove("evt", a)
	if _, err := bus.Trigger(ctx.Ctx(), "evt", 2); err != nil {
		return err
	}

	bus.RemoveAll("evt")
	delivered, err := bus.Trigger(ctx.Ctx(), "evt", 3)
	if err != nil {
		return err
	}
	fmt.Printf("delivered after clear: %v\n", delivered)
	return nil
}

func main() {
	a := app.New()

	for _, m := range []contracts.AppModule{
		config.NewModule("PUBSUB_", "config.yaml"),
		logger.NewModule(),
		events.NewModule(),
		&scenario{},
	} {
		if err := a.Register(m); err != nil {
			log.Fatal(err)
		}
	}

	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
