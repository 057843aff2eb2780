package main

import (
	"errors"
	"eventboard/data/models"
	"eventboard/data/repository"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (app *application) CreateEvent(c *gin.Context) {
	var event models.Event
	if err := app.ReadJSON(c, &event, true); err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	created, err := app.Repo.CreateEvent(event)
	switch {
	case errors.Is(err, repository.ErrNonExistentUser):
		app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"userid": "does not exist"})
		return
	case err != nil:
		app.serverError(c, err)
		return
	}

	app.SendSuccessJSON(c, http.StatusCreated, created, "event")
}

// ListEvents serves both read paths. With a known viewer the result rows
// carry liked flags; without one the bare event list comes back. The
// eventdate parameter is passed through as raw text; the data layer decides
// whether it parses.
func (app *application) ListEvents(c *gin.Context) {
	id, err := queryInt64(c, "id")
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	userID, err := queryInt64(c, "userid")
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	limit, err := queryLimit(c)
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	var eventType *models.EventType
	if raw, ok := c.GetQuery("eventtype"); ok {
		et, err := models.ParseEventType(raw)
		if err != nil {
			app.SendErrorJSON(c, http.StatusBadRequest, err)
			return
		}
		eventType = &et
	}

	filter := &models.EventFilter{
		ID:      id,
		UserID:  userID,
		Name:    queryString(c, "eventname"),
		Date:    queryString(c, "eventdate"),
		Type:    eventType,
		Country: queryString(c, "eventcountry"),
		City:    queryString(c, "eventcity"),
		Place:   queryString(c, "eventplace"),
		Limit:   limit,
	}

	if viewer, ok := viewerID(c); ok {
		events, err := app.Repo.QueryEventsForViewer(filter, viewer)
		if err != nil {
			app.serverError(c, err)
			return
		}
		app.SendSuccessJSON(c, http.StatusOK, events, "events")
		return
	}

	events, err := app.Repo.QueryEvents(filter)
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusOK, events, "events")
}

func (app *application) UpdateEvent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	var upd models.EventUpdate
	if err := app.ReadJSON(c, &upd, false); err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	event, err := app.Repo.UpdateEvent(id, upd)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		app.SendErrorJSON(c, http.StatusNotFound, err)
		return
	case errors.Is(err, repository.ErrNonExistentUser):
		app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"userid": "does not exist"})
		return
	case err != nil:
		app.serverError(c, err)
		return
	}

	app.SendSuccessJSON(c, http.StatusOK, event, "event")
}

func (app *application) DeleteEvent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	deleted, err := app.Repo.DeleteEvent(id)
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusOK, gin.H{"deleted": deleted})
}
