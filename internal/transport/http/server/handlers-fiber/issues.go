package handlers_fiber

import (
	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// SearchIssues handles GET /api/issues/search.
func (h *Handler) SearchIssues(c *fiber.Ctx) error {
	q, err := mapper.ParseIssueQuery(params(c))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.SearchIssues(c.UserContext(), q)
	return reply(c, res, err)
}

// SetIssueType handles POST /api/issues/set_type.
func (h *Handler) SetIssueType(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.SetType(c.UserContext(), p["issue"], entities.IssueType(p["type"]))
	return reply(c, res, err)
}

// SetIssueSeverity handles POST /api/issues/set_severity.
func (h *Handler) SetIssueSeverity(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.SetSeverity(c.UserContext(), p["issue"], entities.IssueSeverity(p["severity"]))
	return reply(c, res, err)
}

// AssignIssue handles POST /api/issues/assign. No assignee unassigns.
func (h *Handler) AssignIssue(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.Assign(c.UserContext(), p["issue"], p["assignee"])
	return reply(c, res, err)
}

// SetIssueTags handles POST /api/issues/set_tags.
func (h *Handler) SetIssueTags(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.SetTags(c.UserContext(), p["issue"], mapper.SplitList(p["tags"]))
	return reply(c, res, err)
}

// DoIssueTransition handles POST /api/issues/do_transition.
func (h *Handler) DoIssueTransition(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.DoTransition(
		c.UserContext(),
		p["issue"],
		entities.IssueTransition(p["transition"]),
		entities.IssueResolution(p["resolution"]),
	)
	return reply(c, res, err)
}

// AddIssueComment handles POST /api/issues/add_comment.
func (h *Handler) AddIssueComment(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.AddComment(c.UserContext(), p["issue"], p["text"])
	return reply(c, res, err)
}

// EditIssueComment handles POST /api/issues/edit_comment.
func (h *Handler) EditIssueComment(c *fiber.Ctx) error {
	p := params(c)
	res, err := h.uc.EditComment(c.UserContext(), p["comment"], p["text"])
	return reply(c, res, err)
}

// DeleteIssueComment handles POST /api/issues/delete_comment.
func (h *Handler) DeleteIssueComment(c *fiber.Ctx) error {
	res, err := h.uc.DeleteComment(c.UserContext(), params(c)["comment"])
	return reply(c, res, err)
}

// BulkChangeIssues handles POST /api/issues/bulk_change.
func (h *Handler) BulkChangeIssues(c *fiber.Ctx) error {
	res, err := h.uc.BulkChange(c.UserContext(), mapper.ParseBulkChange(params(c)))
	return reply(c, res, err)
}

// IssueChangelog handles GET /api/issues/changelog.
func (h *Handler) IssueChangelog(c *fiber.Ctx) error {
	res, err := h.uc.Changelog(c.UserContext(), c.Query("issue"))
	return reply(c, res, err)
}

// IssueTags handles GET /api/issues/tags.
func (h *Handler) IssueTags(c *fiber.Ctx) error {
	q, err := mapper.ParseTagsQuery(params(c))
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.SearchTags(c.UserContext(), q)
	return reply(c, res, err)
}

// IssueSnippets handles GET /api/sources/issue_snippets.
func (h *Handler) IssueSnippets(c *fiber.Ctx) error {
	res, err := h.uc.FlowSnippets(c.UserContext(), c.Query("issueKey"))
	return reply(c, res, err)
}
