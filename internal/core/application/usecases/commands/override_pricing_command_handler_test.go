package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOverridePricingCommandHandler_Handle(t *testing.T) {
	setup := func(t *testing.T, p *parcel.Parcel) (*MockParcelRepository, *MockUoW, *MockParcelUoWFactory) {
		t.Helper()
		parcelRepo := new(MockParcelRepository)
		parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once()

		uow := new(MockUoW)
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.On("ParcelRepository").Return(parcelRepo)
		uow.On("Rollback", mock.Anything).Return(nil).Once()

		factory := new(MockParcelUoWFactory)
		factory.On("Create").Return(uow).Once()
		return parcelRepo, uow, factory
	}

	t.Run("persists the corrected package together with the audit row", func(t *testing.T) {
		ctx := t.Context()
		s := newReadyShipment(t, 0)
		p := newTestParcel(t, s.ID(), 10, 0.5)

		parcelRepo, uow, factory := setup(t, p)
		parcelRepo.On("Update", ctx, p).Return(nil).Once()

		var row *parcel.Override
		parcelRepo.On("AddOverride", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				row = args.Get(1).(*parcel.Override)
			}).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, err := commands.NewOverridePricingCommand(
			p.ID(), parcel.OverrideTotalCharge, decimal.NewFromInt(99),
			"negotiated bulk discount", "operator-1",
		)
		require.NoError(t, err)

		handler := commands.NewOverridePricingCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.True(t, p.ChargeAmount().Equal(decimal.NewFromInt(99)))
		assert.True(t, p.HasPricingOverride())
		require.NotNil(t, row)
		assert.Equal(t, p.ID(), row.ParcelID())
		assert.Equal(t, "negotiated bulk discount", row.Reason())
		assert.Equal(t, "operator-1", row.Actor())
		uow.AssertExpectations(t)
	})

	t.Run("locked package rejects the override and persists nothing", func(t *testing.T) {
		ctx := t.Context()
		s := newReadyShipment(t, 0)
		p := newTestParcel(t, s.ID(), 10, 0.5)
		advanceParcel(t, p, parcel.Shipped)

		parcelRepo, _, factory := setup(t, p)

		cmd, err := commands.NewOverridePricingCommand(
			p.ID(), parcel.OverrideTotalCharge, decimal.NewFromInt(99),
			"late discount", "operator-1",
		)
		require.NoError(t, err)

		handler := commands.NewOverridePricingCommandHandler(factory)
		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrLocked)

		parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		parcelRepo.AssertNotCalled(t, "AddOverride", mock.Anything, mock.Anything)
	})
}
