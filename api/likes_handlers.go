package main

import (
	"errors"
	"eventboard/data/models"
	"eventboard/data/repository"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LikeEvent records a like for the authenticated viewer. No existence
// pre-checks; the store's constraints decide and the violation is mapped to
// a field-tagged error.
func (app *application) LikeEvent(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		app.SendErrorJSON(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var payload struct {
		EventID int64 `json:"event_id" validate:"required"`
	}
	if err := app.ReadJSON(c, &payload, true); err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	like, err := app.Repo.CreateLike(viewer, payload.EventID)
	switch {
	case errors.Is(err, repository.ErrDuplicateLike):
		app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"event_id": "has already been liked"})
		return
	case errors.Is(err, repository.ErrNonExistentEvent):
		app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"event_id": "does not exist"})
		return
	case errors.Is(err, repository.ErrNonExistentUser):
		app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"user_id": "does not exist"})
		return
	case err != nil:
		app.serverError(c, err)
		return
	}

	app.SendSuccessJSON(c, http.StatusCreated, like, "like")
}

// ListLikes returns raw like rows matching the query parameters; the
// event-resolving read lives at /likes/events.
func (app *application) ListLikes(c *gin.Context) {
	id, err := queryInt64(c, "id")
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	userID, err := queryInt64(c, "user_id")
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	eventID, err := queryInt64(c, "event_id")
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	limit, err := queryLimit(c)
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	likes, err := app.Repo.QueryLikes(&models.LikeFilter{
		ID:      id,
		UserID:  userID,
		EventID: eventID,
		Limit:   limit,
	})
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusOK, likes, "likes")
}

// UnlikeEvent removes a single like by its own id.
func (app *application) UnlikeEvent(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	deleted, err := app.Repo.DeleteLike(id)
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusOK, gin.H{"deleted": deleted})
}

// ClearLikes removes every like the viewer has placed.
func (app *application) ClearLikes(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		app.SendErrorJSON(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	deleted, err := app.Repo.DeleteLikesByUser(viewer)
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusOK, gin.H{"deleted": deleted})
}

// EventLikedStatus answers whether the viewer has liked the event; a pure
// boolean, no like row.
func (app *application) EventLikedStatus(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		app.SendErrorJSON(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	eventID, err := parseIDParam(c)
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	liked, err := app.Repo.EventLikedByUser(viewer, eventID)
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusOK, gin.H{"liked": liked})
}

func (app *application) ListLikedEvents(c *gin.Context) {
	viewer, ok := viewerID(c)
	if !ok {
		app.SendErrorJSON(c, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	events, err := app.Repo.QueryLikedEvents(viewer)
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusOK, events, "events")
}
