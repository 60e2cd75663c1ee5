package cmd

import (
	"log/slog"
	"os"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/imaging"
	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/rates"
	"freight/internal/adapters/out/postgres/refcode"
	"freight/internal/adapters/out/tracking"
	"freight/internal/adapters/out/whatsapp"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	refCodes     ports.ReferenceCodeGenerator
	rates        ports.RateResolver
	photoStorage ports.PhotoStorage
	transform    ports.ImageTransform
	trackingAPI  ports.TrackingLookup
	sender       ports.MessageSender
	logger       *slog.Logger
}

// NewCompositionRoot wires every adapter. The photo storage client is
// passed in because its construction needs a context and can fail.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, photoStorage ports.PhotoStorage) CompositionRoot {
	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		refCodes:     refcode.NewGormReferenceCodeGenerator(gormDB),
		rates:        rates.NewGormRateResolver(gormDB),
		photoStorage: photoStorage,
		transform:    imaging.NewProcessor(),
		trackingAPI:  tracking.NewClient(configs.TrackingAPIURL, configs.TrackingAPIKey),
		sender:       whatsapp.NewSender(configs.WhatsAppAPIURL, configs.WhatsAppPhoneID, configs.WhatsAppAccessToken),
		logger:       slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) supplyOrderUoWFactory() commands.SupplyOrderUoWFactory {
	return FuncSupplyOrderUoWFactory(func() commands.SupplyOrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// CreateHandlers builds every use case handler the HTTP server exposes.
func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateShipment:          commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.refCodes),
		UpdateCarrierCode:       commands.NewUpdateCarrierCodeCommandHandler(c.shipmentUoWFactory()),
		ChangeShipmentStatus:    commands.NewChangeShipmentStatusCommandHandler(c.shipmentUoWFactory()),
		DepartShipment:          commands.NewDepartShipmentCommandHandler(c.parcelUoWFactory()),
		CloseShipment:           commands.NewCloseShipmentCommandHandler(c.parcelUoWFactory()),
		SyncTracking:            c.CreateSyncTrackingCommandHandler(),
		CreateParcel:            commands.NewCreateParcelCommandHandler(c.parcelUoWFactory()),
		AutoAssignParcel:        commands.NewAutoAssignParcelCommandHandler(c.uoWFactory(), c.refCodes),
		ChangeParcelStatus:      commands.NewChangeParcelStatusCommandHandler(c.parcelUoWFactory(), c.rates),
		UpdateMeasurements:      commands.NewUpdateParcelMeasurementsCommandHandler(c.parcelUoWFactory()),
		AddParcelItem:           commands.NewAddParcelItemCommandHandler(c.parcelUoWFactory()),
		UpdateParcelItem:        commands.NewUpdateParcelItemCommandHandler(c.parcelUoWFactory()),
		RemoveParcelItem:        commands.NewRemoveParcelItemCommandHandler(c.parcelUoWFactory()),
		UploadParcelMedia:       commands.NewUploadParcelMediaCommandHandler(c.parcelUoWFactory(), c.photoStorage, c.transform),
		OverridePricing:         commands.NewOverridePricingCommandHandler(c.parcelUoWFactory()),
		CreateCustomer:          commands.NewCreateCustomerCommandHandler(c.customerUoWFactory()),
		UpdateConsent:           commands.NewUpdateConsentCommandHandler(c.customerUoWFactory()),
		CreateWarehouse:         commands.NewCreateWarehouseCommandHandler(c.shipmentUoWFactory()),
		CreateSupplyOrder:       commands.NewCreateSupplyOrderCommandHandler(c.supplyOrderUoWFactory()),
		ChangeSupplyOrderStatus: commands.NewChangeSupplyOrderStatusCommandHandler(c.supplyOrderUoWFactory()),
		SendCampaign:            commands.NewSendCampaignCommandHandler(c.notificationUoWFactory(), c.sender, c.photoStorage),

		GetInTransitShipments: queries.NewGetInTransitShipmentsQueryHandler(c.gormDB),
		GetShipmentMedia:      queries.NewGetShipmentMediaQueryHandler(c.gormDB),
		GetOverrideHistory:    queries.NewGetOverrideHistoryQueryHandler(c.gormDB),
		GetCampaigns:          queries.NewGetCampaignsQueryHandler(c.gormDB),
		GetCampaignLogs:       queries.NewGetCampaignLogsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateSyncTrackingCommandHandler() commands.SyncTrackingCommandHandler {
	return commands.NewSyncTrackingCommandHandler(c.shipmentUoWFactory(), c.trackingAPI)
}

// CreateJobManager builds the scheduled job manager.
func (c *CompositionRoot) CreateJobManager(configs Config) *jobs.JobManager {
	return jobs.NewJobManager(
		&c.uowFactory,
		c.CreateSyncTrackingCommandHandler(),
		configs.TrackingSyncSchedule,
		c.logger,
	)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncSupplyOrderUoWFactory func() commands.SupplyOrderUoW

func (f FuncSupplyOrderUoWFactory) Create() commands.SupplyOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
