package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/models"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/repositories"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/services"
)

type ChatHandler struct {
	sessionRepo repositories.SessionRepository
	analyzer    services.AnalyzerService
}

func NewChatHandler(
	sessionRepo repositories.SessionRepository,
	analyzer services.AnalyzerService,
) *ChatHandler {
	return &ChatHandler{
		sessionRepo: sessionRepo,
		analyzer:    analyzer,
	}
}

// HandleChat handles POST /sessions/:id/chat. A model failure mid-turn still
// returns 200: the apology marker lands in the transcript and the warning
// field carries the underlying error.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	session, err := findSession(c, h.sessionRepo)
	if err != nil {
		return err
	}

	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	outcome, err := h.analyzer.Chat(c.UserContext(), session, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrResumeRequired) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"warning": err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.ChatResponse{
		Reply:       outcome.Reply,
		ChatHistory: session.ChatHistory,
		Warning:     outcome.Warning,
	})
}
