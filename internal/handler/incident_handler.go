package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lyfjs/gomis-go-api/internal/dto"
	"github.com/lyfjs/gomis-go-api/internal/service"
	"github.com/lyfjs/gomis-go-api/internal/utils"
)

// IncidentHandler wires incident report HTTP routes. There is no delete;
// incident reports are permanent records.
type IncidentHandler struct {
	service service.IncidentService
	logger  zerolog.Logger
}

// NewIncidentHandler constructs the handler.
func NewIncidentHandler(service service.IncidentService, logger zerolog.Logger) *IncidentHandler {
	return &IncidentHandler{
		service: service,
		logger:  logger.With().Str("component", "incident_handler").Logger(),
	}
}

// Register attaches incident endpoints to the router group.
func (h *IncidentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Post("", h.create)
	router.Put("/:id", h.update)
}

func (h *IncidentHandler) list(c *fiber.Ctx) error {
	incidents, err := h.service.List(c.Context())
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "incidents retrieved", incidents)
}

func (h *IncidentHandler) get(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	incident, err := h.service.Get(c.Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "incident retrieved", incident)
}

func (h *IncidentHandler) create(c *fiber.Ctx) error {
	var payload dto.IncidentCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	incident, err := h.service.Create(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendCreated(c, "incident filed", incident)
}

func (h *IncidentHandler) update(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.IncidentUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	incident, err := h.service.Update(c.Context(), id, payload)
	if err != nil {
		return h.handleError(c, err)
	}

	return utils.SendSuccess(c, "incident updated", incident)
}

func (h *IncidentHandler) handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrIncidentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "incident not found")
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	default:
		return h.internalError(c, err)
	}
}

func (h *IncidentHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
