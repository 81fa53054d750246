package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lyfjs/gomis-go-api/internal/dto"
	"github.com/lyfjs/gomis-go-api/internal/utils"
)

// PreferenceHandler serves the preferences stub. Nothing is persisted: GET
// returns fixed defaults and PUT echoes the posted document with the userId
// overwritten from the path.
type PreferenceHandler struct {
	logger zerolog.Logger
}

// NewPreferenceHandler constructs the handler.
func NewPreferenceHandler(logger zerolog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		logger: logger.With().Str("component", "preference_handler").Logger(),
	}
}

// Register attaches preference endpoints to the router group.
func (h *PreferenceHandler) Register(router fiber.Router) {
	router.Get("/:userId", h.get)
	router.Put("/:userId", h.update)
}

func (h *PreferenceHandler) get(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	return utils.SendSuccess(c, "preferences retrieved", dto.DefaultPreferences(userID))
}

func (h *PreferenceHandler) update(c *fiber.Ctx) error {
	userID, err := parseUintParam(c, "userId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	payload["userId"] = userID

	return utils.SendSuccess(c, "preferences updated", payload)
}
