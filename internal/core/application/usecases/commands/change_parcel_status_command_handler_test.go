package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeParcelStatusCommandHandler_Handle(t *testing.T) {
	setup := func(t *testing.T, p *parcel.Parcel) (*MockShipmentRepository, *MockParcelRepository, *MockCustomerRepository, *MockUoW, *MockParcelUoWFactory) {
		t.Helper()
		shipmentRepo := new(MockShipmentRepository)
		parcelRepo := new(MockParcelRepository)
		parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once()
		customerRepo := new(MockCustomerRepository)

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("ShipmentRepository").Return(shipmentRepo)
		uow.On("ParcelRepository").Return(parcelRepo)
		uow.On("CustomerRepository").Return(customerRepo)
		uow.On("Rollback", mock.Anything).Return(nil).Once()

		factory := new(MockParcelUoWFactory)
		factory.On("Create").Return(uow).Once()
		return shipmentRepo, parcelRepo, customerRepo, uow, factory
	}

	t.Run("shipping without departure evidence reports the missing photo", func(t *testing.T) {
		ctx := t.Context()
		s := newReadyShipment(t, 0)
		p := newTestParcel(t, s.ID(), 10, 0.5)
		advanceParcel(t, p, parcel.ReadyToShip)
		owner := newTestCustomer(t, p.CustomerID(), "Amara Okafor")

		shipmentRepo, parcelRepo, customerRepo, _, factory := setup(t, p)
		shipmentRepo.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
		customerRepo.On("GetAllByIDs", ctx, mock.Anything).
			Return([]*customer.Customer{owner}, nil).Once()

		rates := new(MockRateResolver)
		handler := commands.NewChangeParcelStatusCommandHandler(factory, rates)

		cmd, err := commands.NewChangeParcelStatusCommand(p.ID(), parcel.Shipped)
		require.NoError(t, err)

		handlerErr := handler.Handle(ctx, cmd)

		var gateErr *services.PhotoGateError
		require.ErrorAs(t, handlerErr, &gateErr)
		require.Len(t, gateErr.Missing, 1)
		assert.Equal(t, "Amara Okafor", gateErr.Missing[0].CustomerLabel)
		assert.Equal(t, parcel.ReadyToShip, p.Status())
		parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("entering Packed resolves the route's rates and prices the package", func(t *testing.T) {
		ctx := t.Context()
		s := newReadyShipment(t, 0)
		p := newTestParcel(t, s.ID(), 10, 0.5)
		advanceParcel(t, p, parcel.Received)

		shipmentRepo, parcelRepo, customerRepo, uow, factory := setup(t, p)
		shipmentRepo.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
		customerRepo.On("GetAllByIDs", ctx, mock.Anything).
			Return([]*customer.Customer{}, nil).Once()
		parcelRepo.On("Update", ctx, p).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		rates := new(MockRateResolver)
		rates.On("Resolve", ctx, s.Route()).Return(parcel.Rates{
			PerKg:    decimal.NewFromInt(8),
			PerM3:    decimal.NewFromInt(250),
			Currency: "USD",
		}, nil).Once()

		handler := commands.NewChangeParcelStatusCommandHandler(factory, rates)

		cmd, err := commands.NewChangeParcelStatusCommand(p.ID(), parcel.Packed)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, parcel.Packed, p.Status())
		assert.True(t, p.ChargeAmount().Equal(decimal.NewFromInt(125)),
			"expected 0.5m3 at 250/m3 to beat 10kg at 8/kg, got %s", p.ChargeAmount())
		uow.AssertExpectations(t)
		rates.AssertExpectations(t)
	})

	t.Run("cancelling releases the package's share of the shipment totals", func(t *testing.T) {
		ctx := t.Context()
		s := newDraftShipment(t, 1000, 0)
		p := newTestParcel(t, s.ID(), 300, 1)
		sibling := newTestParcel(t, s.ID(), 200, 1)

		shipmentRepo, parcelRepo, customerRepo, uow, factory := setup(t, p)
		shipmentRepo.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
		shipmentRepo.On("Update", ctx, s).Return(nil).Once()
		customerRepo.On("GetAllByIDs", ctx, mock.Anything).
			Return([]*customer.Customer{}, nil).Once()
		parcelRepo.On("Update", ctx, p).Return(nil).Once()
		parcelRepo.On("GetAllByShipment", ctx, s.ID()).
			Return([]*parcel.Parcel{p, sibling}, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		rates := new(MockRateResolver)
		handler := commands.NewChangeParcelStatusCommandHandler(factory, rates)

		cmd, err := commands.NewChangeParcelStatusCommand(p.ID(), parcel.Cancelled)
		require.NoError(t, err)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, parcel.Cancelled, p.Status())
		assert.InDelta(t, 200, s.TotalWeightKg(), 0.001)
		uow.AssertExpectations(t)
	})
}
