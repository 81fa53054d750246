package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lyfjs/gomis-go-api/internal/dto"
	"github.com/lyfjs/gomis-go-api/internal/service"
	"github.com/lyfjs/gomis-go-api/internal/utils"
)

// ViolationHandler wires violation HTTP routes.
type ViolationHandler struct {
	service service.ViolationService
	logger  zerolog.Logger
}

// NewViolationHandler constructs the handler.
func NewViolationHandler(service service.ViolationService, logger zerolog.Logger) *ViolationHandler {
	return &ViolationHandler{
		service: service,
		logger:  logger.With().Str("component", "violation_handler").Logger(),
	}
}

// Register attaches violation endpoints to the router group. The static
// routes must come before the id wildcard.
func (h *ViolationHandler) Register(router fiber.Router) {
	router.Get("/students", h.studentsWithViolations)
	router.Get("/student/:studentId", h.listByStudent)
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *ViolationHandler) list(c *fiber.Ctx) error {
	studentID, err := parseQueryUint(c, "studentId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	req := dto.ViolationListRequest{
		StudentID: studentID,
		Severity:  strings.TrimSpace(c.Query("severity")),
		Status:    strings.TrimSpace(c.Query("status")),
		Date:      strings.TrimSpace(c.Query("date")),
		Query:     c.Query("q"),
	}

	violations, err := h.service.List(c.Context(), req)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "violations retrieved", violations)
}

func (h *ViolationHandler) listByStudent(c *fiber.Ctx) error {
	studentID, err := parseUintParam(c, "studentId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	violations, err := h.service.ListByStudent(c.Context(), studentID)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "violations retrieved", violations)
}

func (h *ViolationHandler) studentsWithViolations(c *fiber.Ctx) error {
	result, err := h.service.StudentsWithViolations(c.Context(), strings.TrimSpace(c.Query("date")))
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "students with violations retrieved", result)
}

func (h *ViolationHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	violation, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "violation retrieved", violation)
}

func (h *ViolationHandler) create(c *fiber.Ctx) error {
	var payload dto.ViolationCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	violation, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendCreated(c, "violation recorded", violation)
}

func (h *ViolationHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.ViolationUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	violation, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "violation updated", violation)
}

func (h *ViolationHandler) delete(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return utils.SendNoContent(c)
}

func (h *ViolationHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrViolationNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "violation not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *ViolationHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
