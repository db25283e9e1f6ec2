package handlers_fiber

import (
	"fmt"
	"strconv"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// Reset handles POST /mock/reset.
func (h *Handler) Reset(c *fiber.Ctx) error {
	if err := h.uc.Reset(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	h.log.Infow("store reset")
	return c.SendStatus(fiber.StatusNoContent)
}

// SetCurrentUser handles POST /mock/current_user with a JSON user body.
func (h *Handler) SetCurrentUser(c *fiber.Ctx) error {
	var body entities.LoggedInUser
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("invalid body"))
	}
	return noContent(c, h.uc.SetCurrentUser(c.UserContext(), body))
}

// SetAdmin handles POST /mock/admin?isAdmin=bool.
func (h *Handler) SetAdmin(c *fiber.Ctx) error {
	isAdmin, err := boolParam(c, "isAdmin")
	if err != nil {
		return writeError(c, err)
	}
	return noContent(c, h.uc.SetAdmin(c.UserContext(), isAdmin))
}

// SetGateForProject handles POST /mock/gate_for_project.
func (h *Handler) SetGateForProject(c *fiber.Ctx) error {
	return noContent(c, h.uc.SetGateForProject(c.UserContext(), params(c)["name"]))
}

// SetHotspotPermission handles POST /mock/hotspot_permission?canChange=bool.
func (h *Handler) SetHotspotPermission(c *fiber.Ctx) error {
	canChange, err := boolParam(c, "canChange")
	if err != nil {
		return writeError(c, err)
	}
	return noContent(c, h.uc.SetHotspotStatusPermission(c.UserContext(), canChange))
}

func boolParam(c *fiber.Ctx, name string) (bool, error) {
	v, err := strconv.ParseBool(params(c)[name])
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean", entities.ErrInvalidArgument, name)
	}
	return v, nil
}
