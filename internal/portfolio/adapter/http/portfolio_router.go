package http

import (
	"errors"
	"strconv"

	"portfolio-backend/internal/portfolio/domain/model"
	"portfolio-backend/internal/portfolio/usecase"
	apperrors "portfolio-backend/internal/shared/errors"

	"github.com/gofiber/fiber/v2"
)

// PortfolioHTTPHandler handles the HTTP surface of the portfolio API.
type PortfolioHTTPHandler struct {
	content usecase.PortfolioUsecaseInterface
	uploads usecase.UploadUsecaseInterface
}

// NewPortfolioHTTPHandler creates a new portfolio HTTP handler.
func NewPortfolioHTTPHandler(content usecase.PortfolioUsecaseInterface, uploads usecase.UploadUsecaseInterface) *PortfolioHTTPHandler {
	return &PortfolioHTTPHandler{
		content: content,
		uploads: uploads,
	}
}

// SetupRoutes registers all portfolio routes on the given router, which is
// expected to carry the /api prefix.
func (h *PortfolioHTTPHandler) SetupRoutes(router fiber.Router) {
	router.Get("/", h.Root)

	router.Get("/profile", h.GetProfile)
	router.Put("/profile", h.UpdateProfile)

	router.Get("/skills", h.GetSkills)
	router.Post("/skills", h.CreateSkill)
	router.Delete("/skills/:id", h.DeleteSkill)

	router.Get("/projects", h.ListProjects)
	router.Get("/projects/:id", h.GetProject)
	router.Post("/projects", h.CreateProject)

	router.Get("/experience", h.ListExperience)
	router.Post("/experience", h.CreateExperience)

	router.Get("/education", h.ListEducation)
	router.Post("/education", h.CreateEducation)

	router.Get("/papers", h.ListPapers)
	router.Post("/papers", h.CreatePaper)

	router.Post("/contact", h.SubmitContact)
	router.Get("/contact/messages", h.ListContactMessages)

	router.Post("/upload", h.Upload)
}

// Root is a basic health message for the API prefix.
func (h *PortfolioHTTPHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Portfolio API is running",
		"status":  "healthy",
	})
}

// GetProfile returns the singleton profile.
func (h *PortfolioHTTPHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.content.GetProfile(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile applies a partial patch to the singleton profile.
func (h *PortfolioHTTPHandler) UpdateProfile(c *fiber.Ctx) error {
	var update model.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return writeBadRequest(c)
	}

	profile, err := h.content.UpdateProfile(c.Context(), update)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(profile)
}

// GetSkills returns skill names grouped by category.
func (h *PortfolioHTTPHandler) GetSkills(c *fiber.Ctx) error {
	groups, err := h.content.ListSkillsGrouped(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(groups)
}

// CreateSkill adds a new skill.
func (h *PortfolioHTTPHandler) CreateSkill(c *fiber.Ctx) error {
	var skill model.SkillCreate
	if err := c.BodyParser(&skill); err != nil {
		return writeBadRequest(c)
	}

	created, err := h.content.CreateSkill(c.Context(), skill)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(created)
}

// DeleteSkill removes a skill by identifier.
func (h *PortfolioHTTPHandler) DeleteSkill(c *fiber.Ctx) error {
	if err := h.content.DeleteSkill(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Skill deleted successfully"})
}

// ListProjects returns projects with optional featured/category filters.
func (h *PortfolioHTTPHandler) ListProjects(c *fiber.Ctx) error {
	filter := model.ProjectFilter{
		Category: c.Query("category"),
		Limit:    int64(c.QueryInt("limit", 0)),
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return writeError(c, apperrors.NewValidationError("featured must be a boolean"))
		}
		filter.Featured = &featured
	}

	projects, err := h.content.ListProjects(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(projects)
}

// GetProject returns a single project by identifier.
func (h *PortfolioHTTPHandler) GetProject(c *fiber.Ctx) error {
	project, err := h.content.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(project)
}

// CreateProject creates a new project.
func (h *PortfolioHTTPHandler) CreateProject(c *fiber.Ctx) error {
	var project model.ProjectCreate
	if err := c.BodyParser(&project); err != nil {
		return writeBadRequest(c)
	}

	created, err := h.content.CreateProject(c.Context(), project)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(created)
}

// ListExperience returns experience entries by manual order, highest first.
func (h *PortfolioHTTPHandler) ListExperience(c *fiber.Ctx) error {
	entries, err := h.content.ListExperience(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entries)
}

// CreateExperience adds an experience entry.
func (h *PortfolioHTTPHandler) CreateExperience(c *fiber.Ctx) error {
	var exp model.ExperienceCreate
	if err := c.BodyParser(&exp); err != nil {
		return writeBadRequest(c)
	}

	created, err := h.content.CreateExperience(c.Context(), exp)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(created)
}

// ListEducation returns education entries newest first.
func (h *PortfolioHTTPHandler) ListEducation(c *fiber.Ctx) error {
	entries, err := h.content.ListEducation(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(entries)
}

// CreateEducation adds an education entry.
func (h *PortfolioHTTPHandler) CreateEducation(c *fiber.Ctx) error {
	var edu model.EducationCreate
	if err := c.BodyParser(&edu); err != nil {
		return writeBadRequest(c)
	}

	created, err := h.content.CreateEducation(c.Context(), edu)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(created)
}

// ListPapers returns research papers newest first.
func (h *PortfolioHTTPHandler) ListPapers(c *fiber.Ctx) error {
	papers, err := h.content.ListPapers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(papers)
}

// CreatePaper adds a research paper. The payload is free-form.
func (h *PortfolioHTTPHandler) CreatePaper(c *fiber.Ctx) error {
	var paper model.Document
	if err := c.BodyParser(&paper); err != nil {
		return writeBadRequest(c)
	}

	created, err := h.content.CreatePaper(c.Context(), paper)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(created)
}

// SubmitContact stores a contact message and triggers the notification flow.
// The persisted record is returned regardless of notification outcome.
func (h *PortfolioHTTPHandler) SubmitContact(c *fiber.Ctx) error {
	var contact model.ContactCreate
	if err := c.BodyParser(&contact); err != nil {
		return writeBadRequest(c)
	}

	created, err := h.content.SubmitContact(c.Context(), contact)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(created)
}

// ListContactMessages returns contact messages newest first.
func (h *PortfolioHTTPHandler) ListContactMessages(c *fiber.Ctx) error {
	messages, err := h.content.ListContactMessages(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(messages)
}

// Upload accepts a single multipart file and stores it under a generated
// unique name.
func (h *PortfolioHTTPHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, apperrors.NewValidationError("file is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, apperrors.WrapError(err, "failed to open upload"))
	}
	defer file.Close()

	result, err := h.uploads.SaveUpload(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}

// writeError maps an error to its HTTP status. The response shape matches
// the original API: a single "detail" string.
func writeError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.HTTPCode).JSON(fiber.Map{"detail": appErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
}

func writeBadRequest(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
}
