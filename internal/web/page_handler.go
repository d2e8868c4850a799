package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"charity-events/internal/models"
	"charity-events/internal/repository"
	"charity-events/internal/service"
	"charity-events/internal/view"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templatesFS embed.FS

const (
	msgHomeEmpty      = "No upcoming charity events at the moment. Check back soon!"
	msgHomeError      = "Failed to load events. Please refresh the page to try again."
	msgSearchPrompt   = `Please enter search criteria and click "Search Events" to find relevant charity events.`
	msgSearchNoMatch  = "No events found matching your criteria. Try adjusting your filters (e.g., remove the date or location)!"
	msgSearchError    = "Search failed. Please try again."
	msgCategoryError  = "Error loading categories. Please check back later."
	msgDetailNoID     = "Invalid request: No event ID provided. Please navigate from the Home or Search page."
	msgDetailNotFound = "Event not found or has been suspended. Please try another event."
	msgDetailError    = "Error loading event details. Please try again later."
)

// PageHandler renders the three site pages server-side from the same
// services the JSON API uses.
type PageHandler struct {
	events     service.EventService
	categories service.CategoryService
	now        func() time.Time
}

func NewPageHandler(events service.EventService, categories service.CategoryService, now func() time.Time) *PageHandler {
	if now == nil {
		now = time.Now
	}
	return &PageHandler{events: events, categories: categories, now: now}
}

func (h *PageHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
	e.GET("/search", h.Search)
	e.GET("/events/detail", h.Detail)
}

type homeData struct {
	Error string
	Empty string
	Cards []view.Card
}

func (h *PageHandler) Home(c echo.Context) error {
	data := homeData{}

	events, err := h.events.ListUpcoming(c.Request().Context())
	switch {
	case err != nil:
		log.Printf("home page: %v", err)
		data.Error = msgHomeError
	case len(events) == 0:
		data.Empty = msgHomeEmpty
	default:
		data.Cards = h.cards(events)
	}

	return render(c, "home.html", data)
}

type searchForm struct {
	Date       string
	Location   string
	CategoryID string
}

type searchData struct {
	Categories []models.Category
	Form       searchForm
	Submitted  bool
	Prompt     string
	Error      string
	NoResults  string
	Cards      []view.Card
}

// Search renders the form on a bare GET and runs the query when the form
// was submitted (any filter key present, even empty). The clear-filters
// link is a bare GET, which restores the prompt without touching the store.
func (h *PageHandler) Search(c echo.Context) error {
	data := searchData{}

	categories, err := h.categories.ListCategories(c.Request().Context())
	if err != nil {
		log.Printf("search page categories: %v", err)
		data.Error = msgCategoryError
	}
	data.Categories = categories

	params := c.QueryParams()
	_, hasDate := params["date"]
	_, hasLocation := params["location"]
	_, hasCategory := params["categoryId"]
	data.Submitted = hasDate || hasLocation || hasCategory

	data.Form = searchForm{
		Date:       c.QueryParam("date"),
		Location:   c.QueryParam("location"),
		CategoryID: c.QueryParam("categoryId"),
	}

	if !data.Submitted {
		data.Prompt = msgSearchPrompt
		return render(c, "search.html", data)
	}

	filter := repository.EventFilter{
		Date:     data.Form.Date,
		Location: data.Form.Location,
	}
	if id, err := strconv.ParseUint(data.Form.CategoryID, 10, 32); err == nil {
		filter.CategoryID = uint(id)
	}

	events, err := h.events.Search(c.Request().Context(), filter)
	switch {
	case err != nil:
		log.Printf("search page: %v", err)
		data.Error = msgSearchError
	case len(events) == 0:
		data.NoResults = msgSearchNoMatch
	default:
		data.Cards = h.cards(events)
	}

	return render(c, "search.html", data)
}

type detailData struct {
	Error  string
	Detail *view.Detail
}

func (h *PageHandler) Detail(c echo.Context) error {
	idStr := c.QueryParam("id")
	if idStr == "" {
		// Client-side absence: no store call for a missing identifier
		return render(c, "detail.html", detailData{Error: msgDetailNoID})
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return render(c, "detail.html", detailData{Error: msgDetailNotFound})
	}

	event, err := h.events.GetEvent(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return render(c, "detail.html", detailData{Error: msgDetailNotFound})
		}
		log.Printf("detail page: %v", err)
		return render(c, "detail.html", detailData{Error: msgDetailError})
	}

	d := view.NewDetail(event)
	return render(c, "detail.html", detailData{Detail: &d})
}

func (h *PageHandler) cards(events []models.Event) []view.Card {
	now := h.now()
	cards := make([]view.Card, 0, len(events))
	for i := range events {
		cards = append(cards, view.NewCard(&events[i], now))
	}
	return cards
}

func render(c echo.Context, page string, data any) error {
	tpl, err := template.ParseFS(templatesFS,
		"templates/layout.html",
		"templates/card.html",
		"templates/"+page,
	)
	if err != nil {
		return fmt.Errorf("parse templates for %s: %w", page, err)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
