package dto

import (
	"time"

	"charity-events/internal/models"
)

// EventResponse is the enriched-event list shape: an event row flattened
// with its category name and organization name. Decimal columns go out as
// JSON numbers, the date as RFC3339 text.
type EventResponse struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Purpose        string  `json:"purpose"`
	Date           string  `json:"date"`
	Location       string  `json:"location"`
	TicketPrice    float64 `json:"ticket_price"`
	GoalAmount     float64 `json:"goal_amount"`
	CurrentAmount  float64 `json:"current_amount"`
	IsSuspended    bool    `json:"is_suspended"`
	CategoryID     uint    `json:"category_id"`
	OrganizationID uint    `json:"organization_id"`
	CategoryName   string  `json:"category_name"`
	OrgName        string  `json:"org_name"`
}

// EventDetailResponse adds the full organization record for the detail view.
type EventDetailResponse struct {
	EventResponse
	Mission      string `json:"mission"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		Purpose:        e.Purpose,
		Date:           e.Date.Format(time.RFC3339),
		Location:       e.Location,
		TicketPrice:    e.TicketPrice.InexactFloat64(),
		GoalAmount:     e.GoalAmount.InexactFloat64(),
		CurrentAmount:  e.CurrentAmount.InexactFloat64(),
		IsSuspended:    e.IsSuspended,
		CategoryID:     e.CategoryID,
		OrganizationID: e.OrganizationID,
		CategoryName:   e.Category.Name,
		OrgName:        e.Organization.Name,
	}
}

func ToEventDetailResponse(e *models.Event) EventDetailResponse {
	return EventDetailResponse{
		EventResponse: ToEventResponse(e),
		Mission:       e.Organization.Mission,
		ContactEmail:  e.Organization.ContactEmail,
		ContactPhone:  e.Organization.ContactPhone,
	}
}

func ToCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}
