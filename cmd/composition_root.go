package cmd

import (
	"ridehail/internal/adapters/out/postgres"
	"ridehail/internal/core/application/usecases/commands"
	"ridehail/internal/core/application/usecases/queries"
	"ridehail/internal/core/domain/model/kernel"
	"ridehail/internal/core/domain/services"
	"ridehail/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	pricing       services.PricingService
	publisher     ports.RideEventPublisher
	clock         ports.Clock
	systemActorID kernel.UUID
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.RideEventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:       services.NewPricingService(),
		publisher:     publisher,
		clock:         ports.SystemClock(),
		systemActorID: kernel.NewUUID(),
	}
}

func (c *CompositionRoot) CreateCreatePassengerCommandHandler() commands.CreatePassengerCommandHandler {
	var f commands.PassengerUoWFactory = FuncPassengerUoWFactory(func() commands.PassengerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePassengerCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateDriverAvailabilityCommandHandler() commands.UpdateDriverAvailabilityCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRideCommandHandler() commands.CreateRideCommandHandler {
	var f commands.RidePassengerUoWFactory = FuncRidePassengerUoWFactory(func() commands.RidePassengerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRideCommandHandler(f, c.pricing, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateAcceptRideCommandHandler() commands.AcceptRideCommandHandler {
	var f commands.RideDriverUoWFactory = FuncRideDriverUoWFactory(func() commands.RideDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptRideCommandHandler(f, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateRejectRideCommandHandler() commands.RejectRideCommandHandler {
	var f commands.RideDriverUoWFactory = FuncRideDriverUoWFactory(func() commands.RideDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectRideCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkDriverArrivingCommandHandler() commands.MarkDriverArrivingCommandHandler {
	var f commands.RideUoWFactory = FuncRideUoWFactory(func() commands.RideUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDriverArrivingCommandHandler(f)
}

func (c *CompositionRoot) CreateStartRideCommandHandler() commands.StartRideCommandHandler {
	var f commands.RideUoWFactory = FuncRideUoWFactory(func() commands.RideUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRideCommandHandler(f, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateCompleteRideCommandHandler() commands.CompleteRideCommandHandler {
	var f commands.RideDriverPassengerUoWFactory = FuncRideDriverPassengerUoWFactory(
		func() commands.RideDriverPassengerUoW {
			return c.uowFactory.Create()
		})
	return commands.NewCompleteRideCommandHandler(f, c.pricing, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateCancelRideCommandHandler() commands.CancelRideCommandHandler {
	var f commands.RideDriverUoWFactory = FuncRideDriverUoWFactory(func() commands.RideDriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelRideCommandHandler(f, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateCancelStaleRidesCommandHandler() commands.CancelStaleRidesCommandHandler {
	var f commands.RideUoWFactory = FuncRideUoWFactory(func() commands.RideUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleRidesCommandHandler(f, c.publisher, c.clock, c.systemActorID)
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReviewCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableRidesQueryHandler() queries.GetAvailableRidesQueryHandler {
	return queries.NewGetAvailableRidesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserByIDQueryHandler() queries.GetUserByIDQueryHandler {
	return queries.NewGetUserByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRideByIDQueryHandler() queries.GetRideByIDQueryHandler {
	return queries.NewGetRideByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPassengerRidesQueryHandler() queries.GetPassengerRidesQueryHandler {
	return queries.NewGetPassengerRidesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverReviewsQueryHandler() queries.GetDriverReviewsQueryHandler {
	return queries.NewGetDriverReviewsQueryHandler(c.gormDB)
}

type FuncRideUoWFactory func() commands.RideUoW

func (f FuncRideUoWFactory) Create() commands.RideUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncPassengerUoWFactory func() commands.PassengerUoW

func (f FuncPassengerUoWFactory) Create() commands.PassengerUoW {
	return f()
}

type FuncRideDriverUoWFactory func() commands.RideDriverUoW

func (f FuncRideDriverUoWFactory) Create() commands.RideDriverUoW {
	return f()
}

type FuncRidePassengerUoWFactory func() commands.RidePassengerUoW

func (f FuncRidePassengerUoWFactory) Create() commands.RidePassengerUoW {
	return f()
}

type FuncRideDriverPassengerUoWFactory func() commands.RideDriverPassengerUoW

func (f FuncRideDriverPassengerUoWFactory) Create() commands.RideDriverPassengerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
