package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/models"
	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/repositories"
)

type SessionHandler struct {
	sessionRepo repositories.SessionRepository
}

func NewSessionHandler(sessionRepo repositories.SessionRepository) *SessionHandler {
	return &SessionHandler{
		sessionRepo: sessionRepo,
	}
}

// HandleCreate handles POST /sessions
func (h *SessionHandler) HandleCreate(c *fiber.Ctx) error {
	session := h.sessionRepo.Create()

	return c.Status(fiber.StatusCreated).JSON(models.CreateSessionResponse{
		ID: session.ID.String(),
	})
}

// HandleGet handles GET /sessions/:id
func (h *SessionHandler) HandleGet(c *fiber.Ctx) error {
	session, err := findSession(c, h.sessionRepo)
	if err != nil {
		return err
	}

	return c.JSON(models.NewSessionStateResponse(session))
}

// HandleSetJobDescription handles PUT /sessions/:id/job
func (h *SessionHandler) HandleSetJobDescription(c *fiber.Ctx) error {
	session, err := findSession(c, h.sessionRepo)
	if err != nil {
		return err
	}

	var req models.JobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	session.SetJobDescription(req.JobDescription)

	return c.JSON(models.NewSessionStateResponse(session))
}

// findSession parses the :id param and loads the session. Returned errors
// are fiber errors rendered by the app's error handler.
func findSession(c *fiber.Ctx, repo repositories.SessionRepository) (*models.Session, error) {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid session ID format")
	}

	session, err := repo.FindByID(sessionID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	return session, nil
}
