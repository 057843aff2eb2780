package main

import (
	"errors"
	"eventboard/data/models"
	"eventboard/data/repository"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (app *application) RegisterUser(c *gin.Context) {
	var payload struct {
		Username string `json:"username" validate:"required,min=1,max=60"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := app.ReadJSON(c, &payload, true); err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	user, err := app.Repo.CreateUser(payload.Username, payload.Email, payload.Password)
	switch {
	case errors.Is(err, repository.ErrDuplicateUsername):
		app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"username": "has already been taken"})
		return
	case errors.Is(err, repository.ErrDuplicateEmail):
		app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"email": "has already been taken"})
		return
	case err != nil:
		app.serverError(c, err)
		return
	}

	auth, err := app.userAuthResponse(user)
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusCreated, auth, "user")
}

func (app *application) LoginUser(c *gin.Context) {
	var payload struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := app.ReadJSON(c, &payload, true); err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	user, err := app.Repo.Authenticate(payload.Email, payload.Password)
	if err != nil {
		// wrong password and unknown email are indistinguishable here
		app.SendErrorJSON(c, http.StatusUnauthorized, repository.ErrInvalidCredentials)
		return
	}

	auth, err := app.userAuthResponse(user)
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusOK, auth, "user")
}

func (app *application) ListUsers(c *gin.Context) {
	id, err := queryInt64(c, "id")
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}
	limit, err := queryLimit(c)
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	filter := &models.UserFilter{
		ID:       id,
		Username: queryString(c, "username"),
		Email:    queryString(c, "email"),
		Limit:    limit,
	}

	users, err := app.Repo.QueryUsers(filter)
	if err != nil {
		app.serverError(c, err)
		return
	}
	app.SendSuccessJSON(c, http.StatusOK, users, "users")
}

func (app *application) UpdateUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	var upd models.UserUpdate
	if err := app.ReadJSON(c, &upd, false); err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	user, err := app.Repo.UpdateUser(id, upd)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		app.SendErrorJSON(c, http.StatusNotFound, err)
		return
	case errors.Is(err, repository.ErrDuplicateUsername):
		app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"username": "has already been taken"})
		return
	case errors.Is(err, repository.ErrDuplicateEmail):
		app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{"email": "has already been taken"})
		return
	case err != nil:
		app.serverError(c, err)
		return
	}

	app.SendSuccessJSON(c, http.StatusOK, user, "user")
}

func (app *application) DeleteUser(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		app.SendErrorJSON(c, http.StatusBadRequest, err)
		return
	}

	deleted, err := app.Repo.DeleteUser(id)
	if err != nil {
		app.serverError(c, err)
		return
	}
	// zero rows is an empty result, not a failure
	app.SendSuccessJSON(c, http.StatusOK, gin.H{"deleted": deleted})
}
