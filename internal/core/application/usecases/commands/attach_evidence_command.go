package commands

import (
	"errors"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

var (
	ErrAttachEvidenceCommandIsNotConstructed = errors.New(
		"AttachEvidenceCommand must be created via NewAttachEvidenceCommand constructor",
	)
	ErrGpsCoordinatesRequired = errs.NewValueIsRequiredError("GPS coordinates")
	ErrCapturedAtRequired     = errs.NewValueIsRequiredError("capturedAt timestamp")
)

// AttachEvidenceCommand represents a request to attach a completion proof
// record to an order. GPS coordinates and the capture timestamp are required
// at this boundary: the command cannot be constructed without them, so no
// incomplete record ever reaches storage.
type AttachEvidenceCommand struct { //nolint:recvcheck //using for validation
	evidenceID kernel.UUID
	orderID    kernel.UUID
	mediaType  order.MediaType
	url        string
	location   kernel.GeoPoint
	capturedAt time.Time
	meta       map[string]any

	guard guard.ConstructorGuard
}

// NewAttachEvidenceCommand creates a command to attach evidence to an order.
//
// lat, lng and capturedAt are pointers because they are optional on the wire;
// a missing coordinate pair or timestamp fails construction with a
// value-is-required error. The media type must be "photo" or "video" and the
// url non-empty. meta is free-form and may be nil.
func NewAttachEvidenceCommand(
	evidenceID kernel.UUID,
	orderID kernel.UUID,
	mediaType order.MediaType,
	url string,
	lat *float64,
	lng *float64,
	capturedAt *time.Time,
	meta map[string]any,
) (AttachEvidenceCommand, error) {
	cmd := AttachEvidenceCommand{
		meta:  meta,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEvidenceID(evidenceID),
		cmd.setOrderID(orderID),
		cmd.setMediaType(mediaType),
		cmd.setURL(url),
		cmd.setLocation(lat, lng),
		cmd.setCapturedAt(capturedAt),
	); err != nil {
		return AttachEvidenceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachEvidenceCommand) Validate() error {
	return c.guard.Validate(ErrAttachEvidenceCommandIsNotConstructed)
}

// EvidenceID returns the identifier for the new evidence record.
func (c AttachEvidenceCommand) EvidenceID() kernel.UUID {
	return c.evidenceID
}

// OrderID returns the identifier of the order receiving the evidence.
func (c AttachEvidenceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MediaType returns the kind of the media.
func (c AttachEvidenceCommand) MediaType() order.MediaType {
	return c.mediaType
}

// URL returns the location of the media file.
func (c AttachEvidenceCommand) URL() string {
	return c.url
}

// Location returns the GPS position of the capture.
func (c AttachEvidenceCommand) Location() kernel.GeoPoint {
	return c.location
}

// CapturedAt returns the timestamp of the capture.
func (c AttachEvidenceCommand) CapturedAt() time.Time {
	return c.capturedAt
}

// Meta returns the optional free-form metadata.
func (c AttachEvidenceCommand) Meta() map[string]any {
	return c.meta
}

func (c *AttachEvidenceCommand) setEvidenceID(evidenceID kernel.UUID) error {
	if err := evidenceID.Validate(); err != nil {
		return err
	}

	c.evidenceID = evidenceID
	return nil
}

func (c *AttachEvidenceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachEvidenceCommand) setMediaType(mediaType order.MediaType) error {
	if err := mediaType.Validate(); err != nil {
		return err
	}

	c.mediaType = mediaType
	return nil
}

func (c *AttachEvidenceCommand) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}

	c.url = url
	return nil
}

func (c *AttachEvidenceCommand) setLocation(lat *float64, lng *float64) error {
	if lat == nil || lng == nil {
		return ErrGpsCoordinatesRequired
	}

	c.location = kernel.NewGeoPoint(*lat, *lng)
	return nil
}

func (c *AttachEvidenceCommand) setCapturedAt(capturedAt *time.Time) error {
	if capturedAt == nil || capturedAt.IsZero() {
		return ErrCapturedAtRequired
	}

	c.capturedAt = *capturedAt
	return nil
}
