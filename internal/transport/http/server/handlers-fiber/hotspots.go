package handlers_fiber

import (
	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// SearchHotspots handles GET /api/hotspots/search.
func (h *Handler) SearchHotspots(c *fiber.Ctx) error {
	q, err := mapper.ParseHotspotQuery(params(c))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.SearchHotspots(c.UserContext(), q)
	return reply(c, res, err)
}

// ShowHotspot handles GET /api/hotspots/show.
func (h *Handler) ShowHotspot(c *fiber.Ctx) error {
	res, err := h.uc.ShowHotspot(c.UserContext(), c.Query("hotspot"))
	return reply(c, res, err)
}

// AssignHotspot handles POST /api/hotspots/assign.
func (h *Handler) AssignHotspot(c *fiber.Ctx) error {
	p := params(c)
	return noContent(c, h.uc.AssignHotspot(c.UserContext(), p["hotspot"], p["assignee"]))
}

// ChangeHotspotStatus handles POST /api/hotspots/change_status.
func (h *Handler) ChangeHotspotStatus(c *fiber.Ctx) error {
	p := params(c)
	err := h.uc.SetHotspotStatus(
		c.UserContext(),
		p["hotspot"],
		entities.HotspotStatus(p["status"]),
		entities.HotspotResolution(p["resolution"]),
		p["comment"],
	)
	return noContent(c, err)
}

// AddHotspotComment handles POST /api/hotspots/add_comment.
func (h *Handler) AddHotspotComment(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.CommentHotspot(c.UserContext(), p["hotspot"], p["comment"])
	return reply(c, res, err)
}

// EditHotspotComment handles POST /api/hotspots/edit_comment.
func (h *Handler) EditHotspotComment(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.EditHotspotComment(c.UserContext(), p["comment"], p["text"])
	return reply(c, res, err)
}

// DeleteHotspotComment handles POST /api/hotspots/delete_comment.
func (h *Handler) DeleteHotspotComment(c *fiber.Ctx) error {
	return noContent(c, h.uc.DeleteHotspotComment(c.UserContext(), params(c)["comment"]))
}
