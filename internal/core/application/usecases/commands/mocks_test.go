package commands_test

import (
	"context"
	"io"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/core/domain/model/notification"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/supplyorder"
	"freight/internal/core/domain/model/warehouse"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	return m.Called(ctx, s).Error(0)
}
func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) FindOpenOnRoute(ctx context.Context, route kernel.Route) (*shipment.Shipment, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}
func (m *MockShipmentRepository) GetAllSyncable(ctx context.Context) ([]*shipment.Shipment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}
func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}
func (m *MockParcelRepository) AddOverride(ctx context.Context, row *parcel.Override) error {
	return m.Called(ctx, row).Error(0)
}
func (m *MockParcelRepository) GetOverrides(ctx context.Context, parcelID kernel.UUID) ([]*parcel.Override, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Override), args.Error(1)
}

type MockMediaRepository struct{ mock.Mock }

func (m *MockMediaRepository) Add(ctx context.Context, record *media.Media) error {
	return m.Called(ctx, record).Error(0)
}
func (m *MockMediaRepository) GetAllByParcel(ctx context.Context, parcelID kernel.UUID) ([]*media.Media, error) {
	args := m.Called(ctx, parcelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*media.Media), args.Error(1)
}
func (m *MockMediaRepository) GetAllByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*media.Media, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*media.Media), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}
func (m *MockCustomerRepository) GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*customer.Customer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) AddCampaign(ctx context.Context, c *notification.Campaign) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockNotificationRepository) UpdateCampaign(ctx context.Context, c *notification.Campaign) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockNotificationRepository) GetCampaign(ctx context.Context, id kernel.UUID) (*notification.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Campaign), args.Error(1)
}
func (m *MockNotificationRepository) AddDeliveryLog(ctx context.Context, row *notification.DeliveryLog) error {
	return m.Called(ctx, row).Error(0)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(ctx context.Context, w *warehouse.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}
func (m *MockWarehouseRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepository) GetAll(ctx context.Context) ([]*warehouse.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*warehouse.Warehouse), args.Error(1)
}

type MockSupplyOrderRepository struct{ mock.Mock }

func (m *MockSupplyOrderRepository) Add(ctx context.Context, o *supplyorder.SupplyOrder) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockSupplyOrderRepository) Update(ctx context.Context, o *supplyorder.SupplyOrder) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockSupplyOrderRepository) Get(ctx context.Context, id kernel.UUID) (*supplyorder.SupplyOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplyorder.SupplyOrder), args.Error(1)
}

// MockUoW satisfies every composite unit of work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	return m.Called().Get(0).(ports.ShipmentRepository)
}
func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}
func (m *MockUoW) MediaRepository() ports.MediaRepository {
	return m.Called().Get(0).(ports.MediaRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}
func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	return m.Called().Get(0).(ports.WarehouseRepository)
}
func (m *MockUoW) SupplyOrderRepository() ports.SupplyOrderRepository {
	return m.Called().Get(0).(ports.SupplyOrderRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	return m.Called().Get(0).(commands.ShipmentUoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	return m.Called().Get(0).(commands.ParcelUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	return m.Called().Get(0).(commands.NotificationUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockReferenceCodeGenerator struct{ mock.Mock }

func (m *MockReferenceCodeGenerator) Next(ctx context.Context, originWarehouseID kernel.UUID) (string, error) {
	args := m.Called(ctx, originWarehouseID)
	return args.String(0), args.Error(1)
}

type MockRateResolver struct{ mock.Mock }

func (m *MockRateResolver) Resolve(ctx context.Context, route kernel.Route) (parcel.Rates, error) {
	args := m.Called(ctx, route)
	return args.Get(0).(parcel.Rates), args.Error(1)
}

type MockMessageSender struct{ mock.Mock }

func (m *MockMessageSender) Send(ctx context.Context, message ports.OutgoingMessage) error {
	return m.Called(ctx, message).Error(0)
}

type MockPhotoStorage struct{ mock.Mock }

func (m *MockPhotoStorage) Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (ports.StoredObject, error) {
	args := m.Called(ctx, key, contentType, size, body)
	return args.Get(0).(ports.StoredObject), args.Error(1)
}
func (m *MockPhotoStorage) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

type MockImageTransform struct{ mock.Mock }

func (m *MockImageTransform) Process(original []byte, label string, takenAt time.Time) ([]byte, error) {
	args := m.Called(original, label, takenAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockTrackingLookup struct{ mock.Mock }

func (m *MockTrackingLookup) Lookup(ctx context.Context, carrierCode string) (shipment.TrackingSnapshot, error) {
	args := m.Called(ctx, carrierCode)
	return args.Get(0).(shipment.TrackingSnapshot), args.Error(1)
}
