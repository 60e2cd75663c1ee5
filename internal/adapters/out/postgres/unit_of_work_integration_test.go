package postgres_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/postgres/customerrepo"
	"freight/internal/adapters/out/postgres/mediarepo"
	"freight/internal/adapters/out/postgres/notificationrepo"
	"freight/internal/adapters/out/postgres/parcelrepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/adapters/out/postgres/supplyorderrepo"
	"freight/internal/adapters/out/postgres/warehouserepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ItemDTO{},
		&parcelrepo.OverrideDTO{},
		&mediarepo.MediaDTO{},
		&customerrepo.CustomerDTO{},
		&notificationrepo.CampaignDTO{},
		&notificationrepo.DeliveryLogDTO{},
		&warehouserepo.WarehouseDTO{},
		&supplyorderrepo.SupplyOrderDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments, parcels, parcel_items, pricing_overrides, parcel_media, customers, campaigns, delivery_logs, warehouses, supply_orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) newShipment(maxWeightKg float64) *shipment.Shipment {
	route, err := kernel.NewRoute(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), "SHP-GZ-"+kernel.NewUUID().String()[:6], route,
		time.Now().AddDate(0, 0, 30), time.Now().AddDate(0, 0, 60),
		maxWeightKg, 0,
	)
	suite.Require().NoError(err)
	return s
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsShipmentAndParcelTogether() {
	ctx := context.Background()
	s := suite.newShipment(1000)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))

	p, err := parcel.NewParcel(
		kernel.NewUUID(), s.ID(), kernel.NewUUID(),
		parcel.CustomerProvided, nil, 120, 0.8, "USD", "fragile",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loadedShipment, err := verify.ShipmentRepository().Get(ctx, s.ID())
	suite.Require().NoError(err)
	suite.Equal(s.RefCode(), loadedShipment.RefCode())
	suite.True(loadedShipment.Route().IsEqual(s.Route()))

	loadedParcel, err := verify.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Draft, loadedParcel.Status())
	suite.InDelta(120, loadedParcel.WeightKg(), 0.001)
	suite.Equal("fragile", loadedParcel.Note())
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	s := suite.newShipment(1000)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().ShipmentRepository().Get(ctx, s.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestParcelRoundTrip_PreservesPricingAndItems() {
	ctx := context.Background()
	s := suite.newShipment(0)

	p, err := parcel.NewParcel(
		kernel.NewUUID(), s.ID(), kernel.NewUUID(),
		parcel.Procured, nil, 10, 0.5, "USD", "",
	)
	suite.Require().NoError(err)

	item, err := parcel.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, "phone chargers")
	suite.Require().NoError(err)
	suite.Require().NoError(p.AddItem(item))

	suite.Require().NoError(p.ApplyRates(parcel.Rates{
		PerKg:    decimal.NewFromInt(8),
		PerM3:    decimal.NewFromInt(250),
		Currency: "USD",
	}))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ChargeAmount().Equal(decimal.NewFromInt(125)),
		"expected charge 125, got %s", loaded.ChargeAmount())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal(3, loaded.Items()[0].Quantity())
	suite.Equal("phone chargers", loaded.Items()[0].Note())
}

func (suite *UnitOfWorkTestSuite) TestFindOpenOnRoute_SkipsSealedShipments() {
	ctx := context.Background()

	s := suite.newShipment(0)
	sealed := suite.newShipment(0)
	suite.Require().NoError(sealed.SetCarrierCode("MSCU1234567"))
	suite.Require().NoError(sealed.ChangeStatus(shipment.Scheduled, time.Now()))
	suite.Require().NoError(sealed.ChangeStatus(shipment.ReadyToDepart, time.Now()))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, sealed))
	suite.Require().NoError(uow.Commit(ctx))

	finder := suite.factory.Create()
	suite.Require().NoError(finder.Begin(ctx))
	defer func() { _ = finder.Rollback(ctx) }()

	found, err := finder.ShipmentRepository().FindOpenOnRoute(ctx, s.Route())
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(s.ID()))

	_, err = finder.ShipmentRepository().FindOpenOnRoute(ctx, sealed.Route())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestFindOpenOnRoute_PicksOldestShipment() {
	ctx := context.Background()

	route, err := kernel.NewRoute(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	first, err := shipment.NewShipment(
		kernel.NewUUID(), "SHP-GZ-"+kernel.NewUUID().String()[:6], route,
		time.Now().AddDate(0, 0, 45), time.Now().AddDate(0, 0, 75),
		0, 0,
	)
	suite.Require().NoError(err)

	second, err := shipment.NewShipment(
		kernel.NewUUID(), "SHP-GZ-"+kernel.NewUUID().String()[:6], route,
		time.Now().AddDate(0, 0, 30), time.Now().AddDate(0, 0, 60),
		0, 0,
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, first))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	finder := suite.factory.Create()
	suite.Require().NoError(finder.Begin(ctx))
	defer func() { _ = finder.Rollback(ctx) }()

	// The second shipment departs sooner, but the first one was created
	// earlier and must win.
	found, err := finder.ShipmentRepository().FindOpenOnRoute(ctx, route)
	suite.Require().NoError(err)
	suite.True(found.ID().IsEqual(first.ID()))
}

func (suite *UnitOfWorkTestSuite) TestOverrideHistory_ReadsNewestFirst() {
	ctx := context.Background()
	s := suite.newShipment(0)

	p, err := parcel.NewParcel(
		kernel.NewUUID(), s.ID(), kernel.NewUUID(),
		parcel.CustomerProvided, nil, 10, 0.5, "USD", "",
	)
	suite.Require().NoError(err)

	older, err := parcel.RestoreOverride(
		kernel.NewUUID(), p.ID(), parcel.OverrideTotalCharge,
		decimal.NewFromInt(125), decimal.NewFromInt(110),
		"negotiated bulk discount", "operator-1",
		time.Now().UTC().Add(-2*time.Hour),
	)
	suite.Require().NoError(err)

	newer, err := parcel.RestoreOverride(
		kernel.NewUUID(), p.ID(), parcel.OverrideTotalCharge,
		decimal.NewFromInt(110), decimal.NewFromInt(99),
		"damaged in handling", "operator-2",
		time.Now().UTC().Add(-time.Hour),
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, s))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.ParcelRepository().AddOverride(ctx, older))
	suite.Require().NoError(uow.ParcelRepository().AddOverride(ctx, newer))
	suite.Require().NoError(uow.Commit(ctx))

	query, err := queries.NewGetOverrideHistoryQuery(p.ID())
	suite.Require().NoError(err)

	history, err := queries.NewGetOverrideHistoryQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(history, 2)
	suite.True(history[0].ID.IsEqual(newer.ID()))
	suite.True(history[1].ID.IsEqual(older.ID()))
	suite.True(history[0].CreatedAt.After(history[1].CreatedAt))
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
