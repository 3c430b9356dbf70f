package order

import (
	"errors"
	"fmt"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"
)

// ErrEvidenceIsNotConstructed is returned when an Evidence instance was not
// created through the NewEvidence or RestoreEvidence factory methods.
var ErrEvidenceIsNotConstructed = errors.New("Evidence must be created via NewEvidence constructor")

// MediaType identifies the kind of completion evidence attached to an order.
type MediaType string

const (
	// MediaTypePhoto is a still photo taken at the service location.
	MediaTypePhoto MediaType = "photo"

	// MediaTypeVideo is a video recorded at the service location.
	MediaTypeVideo MediaType = "video"
)

// Validate checks if the MediaType value is one of the supported kinds.
func (m MediaType) Validate() error {
	if m != MediaTypePhoto && m != MediaTypeVideo {
		return errs.NewValueIsInvalidErrorWithCause(
			"media type is invalid",
			fmt.Errorf("%q is not a valid media type", string(m)),
		)
	}
	return nil
}

// String returns the wire name of the media type.
func (m MediaType) String() string {
	return string(m)
}

// Evidence is a completion proof record attached to an order: a photo or
// video with the GPS position and timestamp of its capture. Evidence records
// belong to exactly one order and are immutable once attached.
//
// New evidence must carry both a GPS position and a capture timestamp.
// Records restored from persistence may lack either; IsValid reports whether
// a record satisfies the completion requirement.
type Evidence struct {
	id         kernel.UUID
	orderID    kernel.UUID
	mediaType  MediaType
	url        string
	location   kernel.GeoPoint
	capturedAt time.Time
	meta       map[string]any

	isConstructed bool
}

// NewEvidence creates a new Evidence record with validation.
//
// Parameters:
//   - id: unique identifier for the record
//   - orderID: the order this evidence belongs to
//   - mediaType: "photo" or "video"
//   - url: location of the media file (must be non-empty)
//   - location: GPS position of the capture (must be constructed)
//   - capturedAt: timestamp of the capture (must be non-zero)
//   - meta: optional free-form metadata (may be nil)
func NewEvidence(
	id kernel.UUID,
	orderID kernel.UUID,
	mediaType MediaType,
	url string,
	location kernel.GeoPoint,
	capturedAt time.Time,
	meta map[string]any,
) (*Evidence, error) {
	evidence := &Evidence{
		isConstructed: true,
	}

	if err := errors.Join(
		evidence.setID(id),
		evidence.setOrderID(orderID),
		evidence.setMediaType(mediaType),
		evidence.setURL(url),
		evidence.setLocation(location),
		evidence.setCapturedAt(capturedAt),
	); err != nil {
		return nil, err
	}

	evidence.meta = meta

	return evidence, nil
}

// RestoreEvidence reconstructs an Evidence record from persisted state.
// Unlike NewEvidence it tolerates a missing GPS position or capture
// timestamp; such records simply do not satisfy the completion requirement.
func RestoreEvidence(
	id kernel.UUID,
	orderID kernel.UUID,
	mediaType MediaType,
	url string,
	location kernel.GeoPoint,
	capturedAt time.Time,
	meta map[string]any,
) (*Evidence, error) {
	evidence := &Evidence{
		location:      location,
		capturedAt:    capturedAt,
		meta:          meta,
		isConstructed: true,
	}

	if err := errors.Join(
		evidence.setID(id),
		evidence.setOrderID(orderID),
		evidence.setMediaType(mediaType),
		evidence.setURL(url),
	); err != nil {
		return nil, err
	}

	return evidence, nil
}

// Validate ensures the Evidence instance was properly constructed.
func (e *Evidence) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEvidenceIsNotConstructed
	}

	return nil
}

// ID returns the record's unique identifier.
func (e *Evidence) ID() kernel.UUID {
	return e.id
}

// OrderID returns the ID of the order this evidence belongs to.
func (e *Evidence) OrderID() kernel.UUID {
	return e.orderID
}

// MediaType returns the kind of the media.
func (e *Evidence) MediaType() MediaType {
	return e.mediaType
}

// URL returns the location of the media file.
func (e *Evidence) URL() string {
	return e.url
}

// Location returns the GPS position of the capture. For records restored
// without a position, the returned point fails validation.
func (e *Evidence) Location() kernel.GeoPoint {
	return e.location
}

// CapturedAt returns the timestamp of the capture. For records restored
// without a timestamp, the returned time is the zero value.
func (e *Evidence) CapturedAt() time.Time {
	return e.capturedAt
}

// Meta returns the optional free-form metadata. Returns nil if none was set.
func (e *Evidence) Meta() map[string]any {
	return e.meta
}

/// IsValid reports whether the record satisfies the completion requirement:
// both a GPS position and a capture timestamp must be present.
func (e *Evidence) IsValid() bool {
	return e.location.Validate() == nil && !e.capturedAt.IsZero()
}

func (e *Evidence) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Evidence) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *Evidence) setMediaType(mediaType MediaType) error {
	if err := mediaType.Validate(); err != nil {
		return err
	}
	e.mediaType = mediaType
	return nil
}

func (e *Evidence) setURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("url")
	}
	e.url = url
	return nil
}

func (e *Evidence) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}

func (e *Evidence) setCapturedAt(capturedAt time.Time) error {
	if capturedAt.IsZero() {
		return errs.NewValueIsRequiredError("capturedAt")
	}
	e.capturedAt = capturedAt
	return nil
}
