// Package handlers_fiber serves the web API on top of the usecase layer.
package handlers_fiber

import (
	"github.com/codescan-io/sonarqube-sub000/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the web API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// Register mounts every route on r.
func (h *Handler) Register(r fiber.Router) {
	api := r.Group("/api")

	issues := api.Group("/issues")
	issues.Get("/search", h.SearchIssues)
	issues.Post("/set_type", h.SetIssueType)
	issues.Post("/set_severity", h.SetIssueSeverity)
	issues.Post("/assign", h.AssignIssue)
	issues.Post("/set_tags", h.SetIssueTags)
	issues.Post("/do_transition", h.DoIssueTransition)
	issues.Post("/add_comment", h.AddIssueComment)
	issues.Post("/edit_comment", h.EditIssueComment)
	issues.Post("/delete_comment", h.DeleteIssueComment)
	issues.Post("/bulk_change", h.BulkChangeIssues)
	issues.Get("/changelog", h.IssueChangelog)
	issues.Get("/tags", h.IssueTags)
	api.Get("/sources/issue_snippets", h.IssueSnippets)

	rules := api.Group("/rules")
	rules.Get("/search", h.SearchRules)
	rules.Get("/show", h.ShowRule)

	users := api.Group("/users")
	users.Get("/current", h.CurrentUser)
	users.Post("/dismiss_notice", h.DismissNotice)
	users.Get("/search", h.SearchUsers)

	gates := api.Group("/qualitygates")
	gates.Get("/list", h.ListGates)
	gates.Get("/show", h.ShowGate)
	gates.Post("/create", h.CreateGate)
	gates.Post("/copy", h.CopyGate)
	gates.Post("/rename", h.RenameGate)
	gates.Post("/destroy", h.DestroyGate)
	gates.Post("/set_as_default", h.SetDefaultGate)
	gates.Post("/create_condition", h.CreateCondition)
	gates.Post("/update_condition", h.UpdateCondition)
	gates.Post("/delete_condition", h.DeleteCondition)
	gates.Get("/search", h.SearchGateProjects)
	gates.Post("/select", h.SelectProject)
	gates.Post("/deselect", h.DeselectProject)
	gates.Get("/get_by_project", h.GateByProject)
	gates.Post("/add_user", h.AddGateUser)
	gates.Post("/remove_user", h.RemoveGateUser)
	gates.Post("/add_group", h.AddGateGroup)
	gates.Post("/remove_group", h.RemoveGateGroup)
	gates.Get("/search_users", h.SearchGateUsers)
	gates.Get("/search_groups", h.SearchGateGroups)

	hotspots := api.Group("/hotspots")
	hotspots.Get("/search", h.SearchHotspots)
	hotspots.Get("/show", h.ShowHotspot)
	hotspots.Post("/assign", h.AssignHotspot)
	hotspots.Post("/change_status", h.ChangeHotspotStatus)
	hotspots.Post("/add_comment", h.AddHotspotComment)
	hotspots.Post("/edit_comment", h.EditHotspotComment)
	hotspots.Post("/delete_comment", h.DeleteHotspotComment)

	control := r.Group("/mock")
	control.Post("/reset", h.Reset)
	control.Post("/current_user", h.SetCurrentUser)
	control.Post("/admin", h.SetAdmin)
	control.Post("/gate_for_project", h.SetGateForProject)
	control.Post("/hotspot_permission", h.SetHotspotPermission)
}
