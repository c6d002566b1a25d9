package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/blog-service/internal/api/dto"
	"github.com/spec-kit/blog-service/internal/auth"
	"github.com/spec-kit/blog-service/internal/service"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

const maxTitleLength = 200

// PostsHandler exposes the post CRUD endpoints.
type PostsHandler struct {
	posts *service.PostService
}

// NewPostsHandler constructs handler.
func NewPostsHandler(postService *service.PostService) *PostsHandler {
	return &PostsHandler{posts: postService}
}

// List handles GET /posts: the caller's own live posts, newest first.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	posts, err := h.posts.ListByAuthor(c.UserContext(), principal.AccountID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostViews(posts)})
}

// Create handles POST /posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.PostCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateTitle(req.Title); err != nil {
		return err
	}
	if strings.TrimSpace(req.Content) == "" {
		return apperrors.NewValidationError("content is required", nil)
	}

	post, err := h.posts.Create(c.UserContext(), principal.AccountID, req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPostView(post)})
}

// Get handles GET /posts/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	post, err := h.posts.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostView(post)})
}

// Update handles PUT /posts/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	var req dto.PostUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title != nil {
		if err := validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return apperrors.NewValidationError("content cannot be empty", nil)
	}

	post, err := h.posts.Update(c.UserContext(), c.Params("id"), principal.AccountID, service.PostUpdateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewPostView(post)})
}

// Delete handles DELETE /posts/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthenticated("authentication required")
	}

	post, err := h.posts.Delete(c.UserContext(), c.Params("id"), principal.AccountID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":    dto.NewPostView(post),
		"message": "post deleted successfully",
	})
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return apperrors.NewValidationError("title is required", nil)
	}
	if len(trimmed) > maxTitleLength {
		return apperrors.NewValidationError("title must be between 1 and 200 characters", nil)
	}
	return nil
}
