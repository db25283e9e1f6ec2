package handlers_fiber

import (
	"github.com/codescan-io/sonarqube-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// SearchRules handles GET /api/rules/search.
func (h *Handler) SearchRules(c *fiber.Ctx) error {
	res, err := h.uc.SearchRules(c.UserContext(), mapper.ParseRuleQuery(params(c)))
	return reply(c, res, err)
}

// ShowRule handles GET /api/rules/show.
func (h *Handler) ShowRule(c *fiber.Ctx) error {
	res, err := h.uc.RuleDetails(c.UserContext(), c.Query("key"))
	return reply(c, res, err)
}

// CurrentUser handles GET /api/users/current.
func (h *Handler) CurrentUser(c *fiber.Ctx) error {
	res, err := h.uc.CurrentUser(c.UserContext())
	return reply(c, res, err)
}

// DismissNotice handles POST /api/users/dismiss_notice.
func (h *Handler) DismissNotice(c *fiber.Ctx) error {
	return noContent(c, h.uc.DismissNotice(c.UserContext(), params(c)["notice"]))
}

// SearchUsers handles GET /api/users/search.
func (h *Handler) SearchUsers(c *fiber.Ctx) error {
	q, err := mapper.ParseUserQuery(params(c))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.SearchUsers(c.UserContext(), q)
	return reply(c, res, err)
}
