package http

import (
	"time"

	"fieldservice/internal/core/application/usecases/queries"
)

// GeoPayload carries a pair of geographic coordinates in decimal degrees.
type GeoPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// GpsPayload carries optional capture coordinates for evidence uploads.
// Both fields must be present for the upload to count toward completion.
type GpsPayload struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// CustomerPayload carries the customer's contact details.
type CustomerPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	Customer    *CustomerPayload `json:"customer,omitempty"`
	Geo         GeoPayload       `json:"geo"`
}

// AttachEvidenceRequest is the body of POST /api/v1/orders/:orderId/adl.
type AttachEvidenceRequest struct {
	Type       string         `json:"type"`
	URL        string         `json:"url"`
	Gps        *GpsPayload    `json:"gps,omitempty"`
	CapturedAt *time.Time     `json:"capturedAt,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// OrderResponse is the order document returned by order endpoints.
type OrderResponse struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Description      *string            `json:"description,omitempty"`
	Customer         *CustomerPayload   `json:"customer,omitempty"`
	Geo              GeoPayload         `json:"geo"`
	Status           string             `json:"status"`
	AssignedMasterID *string            `json:"assignedMasterId,omitempty"`
	CreatedAt        string             `json:"createdAt"`
	UpdatedAt        string             `json:"updatedAt"`
	AssignedMaster   *MasterResponse    `json:"assignedMaster,omitempty"`
	AdlMedia         []EvidenceResponse `json:"adlMedia"`
}

// MasterResponse is the master document returned by master endpoints.
type MasterResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Rating      float64    `json:"rating"`
	IsAvailable bool       `json:"isAvailable"`
	Geo         GeoPayload `json:"geo"`
	CurrentLoad *int       `json:"currentLoad,omitempty"`
}

// EvidenceResponse is the ADL media document returned by order endpoints.
type EvidenceResponse struct {
	ID         string         `json:"id"`
	OrderID    string         `json:"orderId"`
	Type       string         `json:"type"`
	URL        string         `json:"url"`
	Gps        *GeoPayload    `json:"gps,omitempty"`
	CapturedAt *string        `json:"capturedAt,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func toOrderResponse(src queries.GetOrderQueryResponse) OrderResponse {
	response := OrderResponse{
		ID:    src.ID.String(),
		Title: src.Title,
		Geo: GeoPayload{
			Lat: src.Location.Lat(),
			Lng: src.Location.Lng(),
		},
		Status:    src.Status,
		CreatedAt: src.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: src.UpdatedAt.UTC().Format(time.RFC3339),
		AdlMedia:  make([]EvidenceResponse, 0, len(src.Evidence)),
	}

	if src.Description != nil {
		response.Description = src.Description
	}
	if src.Customer != nil {
		response.Customer = &CustomerPayload{
			Name:  src.Customer.Name,
			Phone: src.Customer.Phone,
		}
	}
	if src.MasterID != nil {
		masterID := src.MasterID.String()
		response.AssignedMasterID = &masterID
	}
	if src.Master != nil {
		response.AssignedMaster = &MasterResponse{
			ID:          src.Master.ID.String(),
			Name:        src.Master.Name,
			Rating:      src.Master.Rating,
			IsAvailable: src.Master.Available,
			Geo: GeoPayload{
				Lat: src.Master.Location.Lat(),
				Lng: src.Master.Location.Lng(),
			},
		}
	}

	for _, record := range src.Evidence {
		response.AdlMedia = append(response.AdlMedia, toEvidenceResponse(record))
	}

	return response
}

func toEvidenceResponse(src queries.OrderEvidenceResponse) EvidenceResponse {
	response := EvidenceResponse{
		ID:      src.ID.String(),
		OrderID: src.OrderID.String(),
		Type:    src.MediaType,
		URL:     src.URL,
		Meta:    src.Meta,
	}

	if src.Location != nil {
		response.Gps = &GeoPayload{
			Lat: src.Location.Lat(),
			Lng: src.Location.Lng(),
		}
	}
	if src.CapturedAt != nil {
		capturedAt := src.CapturedAt.UTC().Format(time.RFC3339)
		response.CapturedAt = &capturedAt
	}

	return response
}

func toMasterResponse(src queries.MasterQueryResponse) MasterResponse {
	currentLoad := src.CurrentLoad
	return MasterResponse{
		ID:          src.ID.String(),
		Name:        src.Name,
		Rating:      src.Rating,
		IsAvailable: src.Available,
		Geo: GeoPayload{
			Lat: src.Location.Lat(),
			Lng: src.Location.Lng(),
		},
		CurrentLoad: &currentLoad,
	}
}
