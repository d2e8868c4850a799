// Package view maps enriched events to the value trees the page templates
// render. Everything here is pure: formatting, badge selection, and the
// progress computation take their inputs (including "now") as arguments,
// so pages and tests share one implementation.
package view

import (
	"fmt"
	"time"

	"charity-events/internal/models"

	"github.com/shopspring/decimal"
)

const (
	cardPlaceholderURL = "https://via.placeholder.com/400x250?text=Charity+Event"
	heroPlaceholderURL = "https://via.placeholder.com/1200x400?text=Event+Detail"

	cardProgressDelayMS = 300
	heroProgressDelayMS = 500
)

// Image carries the deterministic per-event asset path plus the fallback
// the template swaps in on load error (switching fit from cover to contain).
type Image struct {
	Src      string
	Alt      string
	Fallback string
}

type Badge struct {
	Label string
	Icon  string
	Color string
}

// Progress describes the funding bar: the clamped fill percent, the
// two-decimal amount strings, and the animation delay before the fill
// widens from zero.
type Progress struct {
	Percent int
	Raised  string
	Goal    string
	DelayMS int
}

// Card is one event tile on the home and search pages.
type Card struct {
	Image     Image
	Badge     Badge
	Category  string
	Name      string
	Date      string
	Location  string
	Price     string
	Progress  Progress
	DetailURL string
}

// Detail is the single-event page.
type Detail struct {
	Hero         Image
	Category     string
	Name         string
	Date         string
	Time         string
	Location     string
	OrgName      string
	Description  string
	Purpose      string
	Mission      string
	Contact      string
	TicketPrice  string
	Progress     Progress
	PercentLabel string
}

// ProgressPercent computes min(round(current/goal*100), 100). A goal of
// zero (or less) renders as 0 rather than dividing by zero.
func ProgressPercent(current, goal decimal.Decimal) int {
	if goal.Sign() <= 0 {
		return 0
	}
	pct := current.Div(goal).Mul(decimal.NewFromInt(100)).Round(0)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	if pct.Sign() < 0 {
		return 0
	}
	return int(pct.IntPart())
}

// Money renders a two-decimal dollar string, e.g. "$250.00".
func Money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// TicketLabel is the card price line: free entry wording at zero,
// otherwise a per-ticket currency string.
func TicketLabel(price decimal.Decimal) string {
	if price.IsZero() {
		return "Free Entry (Donations Encouraged)"
	}
	return Money(price) + " per ticket"
}

// DetailTicketLabel adds the charity note the detail page carries.
func DetailTicketLabel(price decimal.Decimal) string {
	if price.IsZero() {
		return "Free Entry (Donations Encouraged)"
	}
	return Money(price) + " per ticket (100% goes to charity)"
}

// StatusBadge classifies an event against the supplied clock reading:
// strictly future dates are Upcoming, everything else is Past.
func StatusBadge(date, now time.Time) Badge {
	if date.After(now) {
		return Badge{Label: "Upcoming", Icon: "fa-solid fa-calendar-check", Color: "#27ae60"}
	}
	return Badge{Label: "Past", Icon: "fa-solid fa-calendar-xmark", Color: "#7f8c8d"}
}

// EventImage is the card thumbnail contract.
func EventImage(id uint, name string) Image {
	return Image{
		Src:      fmt.Sprintf("/images/event-%d.jpg", id),
		Alt:      name,
		Fallback: cardPlaceholderURL,
	}
}

// HeroImage is the detail-page variant with its larger placeholder.
func HeroImage(id uint, name string) Image {
	return Image{
		Src:      fmt.Sprintf("/images/event-%d.jpg", id),
		Alt:      name + " - Hero Image",
		Fallback: heroPlaceholderURL,
	}
}

func DetailURL(id uint) string {
	return fmt.Sprintf("/events/detail?id=%d", id)
}

// NewCard builds the tile view for an enriched event.
func NewCard(e *models.Event, now time.Time) Card {
	return Card{
		Image:    EventImage(e.ID, e.Name),
		Badge:    StatusBadge(e.Date, now),
		Category: e.Category.Name,
		Name:     e.Name,
		Date:     e.Date.Format("2 January 2006, 3:04 PM"),
		Location: e.Location,
		Price:    TicketLabel(e.TicketPrice),
		Progress: Progress{
			Percent: ProgressPercent(e.CurrentAmount, e.GoalAmount),
			Raised:  Money(e.CurrentAmount),
			Goal:    Money(e.GoalAmount),
			DelayMS: cardProgressDelayMS,
		},
		DetailURL: DetailURL(e.ID),
	}
}

// NewDetail builds the single-event page view.
func NewDetail(e *models.Event) Detail {
	percent := ProgressPercent(e.CurrentAmount, e.GoalAmount)
	return Detail{
		Hero:        HeroImage(e.ID, e.Name),
		Category:    e.Category.Name,
		Name:        e.Name,
		Date:        e.Date.Format("2 January 2006"),
		Time:        e.Date.Format("3:04 PM"),
		Location:    e.Location,
		OrgName:     e.Organization.Name,
		Description: e.Description,
		Purpose:     e.Purpose,
		Mission:     e.Organization.Mission,
		Contact:     e.Organization.ContactEmail + " | " + e.Organization.ContactPhone,
		TicketPrice: DetailTicketLabel(e.TicketPrice),
		Progress: Progress{
			Percent: percent,
			Raised:  Money(e.CurrentAmount),
			Goal:    Money(e.GoalAmount),
			DelayMS: heroProgressDelayMS,
		},
		PercentLabel: fmt.Sprintf("%d%% Complete", percent),
	}
}
