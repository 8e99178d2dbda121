package apiserver

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type departmentRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

type handlers struct {
	repo      *Repository
	users     *UserStore
	tokens    *TokenManager
	validator *validator.Validate
	logger    *zap.Logger
}

func (h *handlers) login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest("Invalid request body")
	}
	if err := h.validator.Struct(&req); err != nil {
		return badRequest("Email and password are required")
	}
	u, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		return err
	}
	token, err := h.tokens.Issue(u)
	if err != nil {
		return err
	}
	h.logger.Info("user signed in", zap.String("email", u.Email), zap.Bool("admin", u.IsAdmin))
	return c.JSON(loginResponse{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin, Token: token})
}

func (h *handlers) listDepartments(c *fiber.Ctx) error {
	return c.JSON(h.repo.List())
}

func (h *handlers) createDepartment(c *fiber.Ctx) error {
	name, err := h.parseName(c)
	if err != nil {
		return err
	}
	d, err := h.repo.Create(name)
	if err != nil {
		return err
	}
	h.logger.Info("department created", zap.String("id", d.ID), zap.String("name", d.Name))
	return c.Status(http.StatusCreated).JSON(d)
}

func (h *handlers) updateDepartment(c *fiber.Ctx) error {
	name, err := h.parseName(c)
	if err != nil {
		return err
	}
	d, err := h.repo.Update(c.Params("id"), name)
	if err != nil {
		return err
	}
	h.logger.Info("department updated", zap.String("id", d.ID), zap.String("name", d.Name))
	return c.JSON(d)
}

func (h *handlers) deleteDepartment(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.repo.Delete(id); err != nil {
		return err
	}
	h.logger.Info("department deleted", zap.String("id", id))
	return c.JSON(fiber.Map{"_id": id})
}

func (h *handlers) parseName(c *fiber.Ctx) (string, error) {
	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return "", badRequest("Invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := h.validator.Struct(&req); err != nil {
		return "", badRequest("Department name is required (max 100 characters)")
	}
	return req.Name, nil
}
