// Package handler contains the HTTP handlers for the application.
package handler

import (
	"cookify/internal/domain/entity"
	"cookify/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// currentActor builds an OrderActor from the authenticated request context.
func currentActor(c echo.Context) (usecase.OrderActor, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return usecase.OrderActor{}, false
	}

	roles, _ := c.Get("roles").([]string)

	return usecase.OrderActor{
		UserID: userID,
		Roles:  entity.RolesFromStrings(roles),
	}, true
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
