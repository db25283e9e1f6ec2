package handlers_fiber

import (
	"github.com/codescan-io/sonarqube-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListGates handles GET /api/qualitygates/list.
func (h *Handler) ListGates(c *fiber.Ctx) error {
	res, err := h.uc.ListGates(c.UserContext())
	return reply(c, res, err)
}

// ShowGate handles GET /api/qualitygates/show.
func (h *Handler) ShowGate(c *fiber.Ctx) error {
	res, err := h.uc.ShowGate(c.UserContext(), c.Query("name"))
	return reply(c, res, err)
}

// CreateGate handles POST /api/qualitygates/create.
func (h *Handler) CreateGate(c *fiber.Ctx) error {
	res, err := h.uc.CreateGate(c.UserContext(), params(c)["name"])
	return reply(c, res, err)
}

// CopyGate handles POST /api/qualitygates/copy.
func (h *Handler) CopyGate(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.CopyGate(c.UserContext(), p["sourceName"], p["name"])
	return reply(c, res, err)
}

// RenameGate handles POST /api/qualitygates/rename.
func (h *Handler) RenameGate(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.RenameGate(c.UserContext(), p["currentName"], p["name"])
	return reply(c, res, err)
}

// DestroyGate handles POST /api/qualitygates/destroy.
func (h *Handler) DestroyGate(c *fiber.Ctx) error {
	return noContent(c, h.uc.DeleteGate(c.UserContext(), params(c)["name"]))
}

// SetDefaultGate handles POST /api/qualitygates/set_as_default.
func (h *Handler) SetDefaultGate(c *fiber.Ctx) error {
	return noContent(c, h.uc.SetDefaultGate(c.UserContext(), params(c)["name"]))
}

// CreateCondition handles POST /api/qualitygates/create_condition.
func (h *Handler) CreateCondition(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.CreateCondition(c.UserContext(), p["gateName"], mapper.ParseCondition(p))
	return reply(c, res, err)
}

// UpdateCondition handles POST /api/qualitygates/update_condition.
func (h *Handler) UpdateCondition(c *fiber.Ctx) error {
	_, err := h.uc.UpdateCondition(c.UserContext(), mapper.ParseCondition(params(c)))
	return noContent(c, err)
}

// DeleteCondition handles POST /api/qualitygates/delete_condition.
func (h *Handler) DeleteCondition(c *fiber.Ctx) error {
	return noContent(c, h.uc.DeleteCondition(c.UserContext(), params(c)["id"]))
}

// SearchGateProjects handles GET /api/qualitygates/search.
func (h *Handler) SearchGateProjects(c *fiber.Ctx) error {
	q, err := mapper.ParseProjectQuery(params(c))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.SearchProjects(c.UserContext(), q)
	return reply(c, res, err)
}

// SelectProject handles POST /api/qualitygates/select.
func (h *Handler) SelectProject(c *fiber.Ctx) error {
	p := params(c)
	return noContent(c, h.uc.AssociateProject(c.UserContext(), p["gateName"], p["projectKey"]))
}

// DeselectProject handles POST /api/qualitygates/deselect.
func (h *Handler) DeselectProject(c *fiber.Ctx) error {
	p := params(c)
	return noContent(c, h.uc.DissociateProject(c.UserContext(), p["gateName"], p["projectKey"]))
}

// GateByProject handles GET /api/qualitygates/get_by_project.
func (h *Handler) GateByProject(c *fiber.Ctx) error {
	gate, err := h.uc.GateForProject(c.UserContext(), c.Query("project"))
	return reply(c, fiber.Map{"qualityGate": gate}, err)
}

// AddGateUser handles POST /api/qualitygates/add_user.
func (h *Handler) AddGateUser(c *fiber.Ctx) error {
	p := params(c)
	return noContent(c, h.uc.AddGateUser(c.UserContext(), p["gateName"], p["login"]))
}

// RemoveGateUser handles POST /api/qualitygates/remove_user.
func (h *Handler) RemoveGateUser(c *fiber.Ctx) error {
	p := params(c)
	return noContent(c, h.uc.RemoveGateUser(c.UserContext(), p["gateName"], p["login"]))
}

// AddGateGroup handles POST /api/qualitygates/add_group.
func (h *Handler) AddGateGroup(c *fiber.Ctx) error {
	p := params(c)
	return noContent(c, h.uc.AddGateGroup(c.UserContext(), p["gateName"], p["groupName"]))
}

// RemoveGateGroup handles POST /api/qualitygates/remove_group.
func (h *Handler) RemoveGateGroup(c *fiber.Ctx) error {
	p := params(c)
	return noContent(c, h.uc.RemoveGateGroup(c.UserContext(), p["gateName"], p["groupName"]))
}

// SearchGateUsers handles GET /api/qualitygates/search_users.
func (h *Handler) SearchGateUsers(c *fiber.Ctx) error {
	res, err := h.uc.SearchGateUsers(c.UserContext(), mapper.ParsePermissionQuery(params(c)))
	return reply(c, res, err)
}

// SearchGateGroups handles GET /api/qualitygates/search_groups.
func (h *Handler) SearchGateGroups(c *fiber.Ctx) error {
	res, err := h.uc.SearchGateGroups(c.UserContext(), mapper.ParsePermissionQuery(params(c)))
	return reply(c, res, err)
}
