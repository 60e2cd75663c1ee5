// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ParcelRepoFactory provides access to the package repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// MediaRepoFactory provides access to the media repository within a transaction.
	MediaRepoFactory interface {
		MediaRepository() ports.MediaRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// WarehouseRepoFactory provides access to the warehouse repository within a transaction.
	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// SupplyOrderRepoFactory provides access to the supply order repository within a transaction.
	SupplyOrderRepoFactory interface {
		SupplyOrderRepository() ports.SupplyOrderRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		WarehouseRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// ParcelUoW manages transactions for package operations. Package
	// lifecycle moves read the owning shipment, the sibling packages and
	// the customer directory, so those repositories travel together.
	ParcelUoW interface {
		TxManager
		ShipmentRepoFactory
		ParcelRepoFactory
		MediaRepoFactory
		CustomerRepoFactory
	}

	// ParcelUoWFactory creates new package unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// NotificationUoW manages transactions for campaign runs, which read
	// shipments, packages, media and customers and write campaign rows.
	NotificationUoW interface {
		TxManager
		ShipmentRepoFactory
		ParcelRepoFactory
		MediaRepoFactory
		CustomerRepoFactory
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// SupplyOrderUoW manages transactions for supply order operations.
	SupplyOrderUoW interface {
		TxManager
		SupplyOrderRepoFactory
	}

	// SupplyOrderUoWFactory creates new supply order unit of work instances.
	SupplyOrderUoWFactory interface {
		Create() SupplyOrderUoW
	}

	// UoW manages transactions spanning every aggregate. Used by commands
	// that coordinate shipment, package, media, customer and notification
	// changes in one boundary.
	UoW interface {
		TxManager
		ShipmentRepoFactory
		ParcelRepoFactory
		MediaRepoFactory
		CustomerRepoFactory
		NotificationRepoFactory
		WarehouseRepoFactory
		SupplyOrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
