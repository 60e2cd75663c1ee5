package commands

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/media"
	"freight/internal/core/ports"
)

// UploadParcelMediaCommandHandler stores photo uploads. The original and a
// watermarked derivative go to object storage under deterministic keys;
// the media row and the package's refreshed evidence flags are committed
// together, so the flags never drift from the rows on the write path.
type UploadParcelMediaCommandHandler struct {
	uowFactory ParcelUoWFactory
	storage    ports.PhotoStorage
	transform  ports.ImageTransform
}

// NewUploadParcelMediaCommandHandler creates a handler for photo uploads.
func NewUploadParcelMediaCommandHandler(
	uowFactory ParcelUoWFactory,
	storage ports.PhotoStorage,
	transform ports.ImageTransform,
) UploadParcelMediaCommandHandler {
	return UploadParcelMediaCommandHandler{
		uowFactory: uowFactory,
		storage:    storage,
		transform:  transform,
	}
}

// Handle processes the upload command.
func (h UploadParcelMediaCommandHandler) Handle(ctx context.Context, command UploadParcelMediaCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	owner, err := uow.ShipmentRepository().Get(ctx, aggregate.ShipmentID())
	if err != nil {
		return err
	}

	processed, err := h.transform.Process(command.Data(), owner.RefCode(), command.CapturedAt())
	if err != nil {
		return err
	}

	keyBase := mediaKeyBase(aggregate.ID(), command.Stage(), command.CapturedAt())
	original, err := h.storage.Put(ctx, keyBase+"-original",
		command.ContentType(), int64(len(command.Data())), bytes.NewReader(command.Data()))
	if err != nil {
		return err
	}
	derived, err := h.storage.Put(ctx, keyBase+"-processed",
		"image/jpeg", int64(len(processed)), bytes.NewReader(processed))
	if err != nil {
		return err
	}

	record, err := media.NewMedia(
		kernel.NewUUID(),
		aggregate.ID(),
		command.Stage(),
		original.Key,
		derived.Key,
		command.ContentType(),
		original.SizeBytes,
		command.UploadedBy(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	mediaRepo := uow.MediaRepository()
	if err := mediaRepo.Add(ctx, record); err != nil {
		return err
	}

	rows, err := mediaRepo.GetAllByParcel(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	aggregate.RefreshPhotoFlags(rows)

	if err := parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// mediaKeyBase builds the deterministic storage prefix: package, stage,
// capture month, random suffix.
func mediaKeyBase(parcelID kernel.UUID, stage media.Stage, capturedAt time.Time) string {
	return fmt.Sprintf("parcels/%s/%s/%s/%s",
		parcelID,
		strings.ToLower(stage.String()),
		capturedAt.UTC().Format("2006-01"),
		kernel.NewUUID(),
	)
}
