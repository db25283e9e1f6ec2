package handlers_fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/codescan-io/sonarqube-sub000/internal/entities"
	"github.com/codescan-io/sonarqube-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// ErrorMessage is one entry of the API error envelope.
type ErrorMessage struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the API error envelope.
type ErrorResponse struct {
	Errors []ErrorMessage `json:"errors"`
}

var (
	notFoundErrors = []error{
		entities.ErrIssueNotFound,
		entities.ErrCommentNotFound,
		entities.ErrQualityGateNotFound,
		entities.ErrConditionNotFound,
		entities.ErrHotspotNotFound,
	}
	badRequestErrors = []error{
		entities.ErrInvalidArgument,
		entities.ErrUnknownTransition,
	}
	clientErrors = append(append([]error{entities.ErrPermissionDenied}, notFoundErrors...), badRequestErrors...)
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case isAny(err, notFoundErrors):
		status = http.StatusNotFound
		msg = message(err)
	case errors.Is(err, entities.ErrPermissionDenied):
		status = http.StatusForbidden
		msg = message(err)
	case isAny(err, badRequestErrors):
		status = http.StatusBadRequest
		msg = message(err)
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		msg = "request timed out"
	}

	return c.Status(status).JSON(errorResponse(msg))
}

func errorResponse(msg string) ErrorResponse {
	return ErrorResponse{Errors: []ErrorMessage{{Msg: msg}}}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// message drops the sentinel prefix so clients see the store's own wording.
func message(err error) string {
	msg := err.Error()
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return strings.TrimPrefix(msg, target.Error()+": ")
		}
	}
	return msg
}

// params merges query string and form body into one bag; the body wins.
// Values outlive the request, so they are copied out of the request buffer.
func params(c *fiber.Ctx) mapper.Params {
	p := mapper.Params{}
	for k, v := range c.Queries() {
		p[utils.CopyString(k)] = utils.CopyString(v)
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		p[string(k)] = string(v)
	})
	return p
}

func noContent(c *fiber.Ctx, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func reply(c *fiber.Ctx, v any, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(v)
}
