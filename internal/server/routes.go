package server

import (
	"errors"

	"notekeeper/internal/auth"
	"notekeeper/internal/config"
	"notekeeper/internal/database/models"
	"notekeeper/internal/database/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var errMalformattedBody = fiber.NewError(fiber.StatusBadRequest, "malformatted body")

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Get("/", s.helloHandler)
	s.App.Get("/health", s.healthHandler)

	protected := s.requireAuth()
	api := s.App.Group("/api")
	if s.auth != nil {
		api.Post("/login", s.login)
	}
	api.Get("/notes", s.getAllNotes)
	api.Get("/notes/:id", s.getSingleNote)
	api.Post("/notes", protected, s.createNote)
	api.Delete("/notes/:id", protected, s.deleteNote)

	s.App.Use(s.unknownEndpoint)
}

func (s *FiberServer) requireAuth() fiber.Handler {
	if s.auth == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return s.auth.Middleware()
}

func (s *FiberServer) helloHandler(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString("<h1>Hello World!</h1>")
}

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	if s.db == nil {
		return c.JSON(fiber.Map{"status": "up", "driver": config.DriverMemory})
	}
	stats := s.db.Health()
	if stats["status"] != "up" {
		c.Status(fiber.StatusServiceUnavailable)
	}
	return c.JSON(stats)
}

func (s *FiberServer) login(c *fiber.Ctx) error {
	credentials := models.LoginCredentials{}
	if err := c.BodyParser(&credentials); err != nil {
		return errMalformattedBody
	}
	token, err := s.auth.Login(credentials.Username, credentials.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"token": token})
}

func (s *FiberServer) getAllNotes(c *fiber.Ctx) error {
	notes, err := s.notes.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

func (s *FiberServer) getSingleNote(c *fiber.Ctx) error {
	note, err := s.notes.GetByID(c.UserContext(), c.Params("id"))
	if errors.Is(err, repositories.ErrNoteNotFound) {
		c.Status(fiber.StatusNotFound)
		return nil
	}
	if err != nil {
		return err
	}
	return c.JSON(note)
}

func (s *FiberServer) createNote(c *fiber.Ctx) error {
	input := models.NoteInput{}
	// Bodies that are not JSON are treated as empty, like an absent body.
	if len(c.Body()) > 0 && c.Is("json") {
		if err := c.BodyParser(&input); err != nil {
			return errMalformattedBody
		}
	}

	note, err := s.notes.Create(c.UserContext(), input)
	var verr *repositories.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Message})
	}
	if err != nil {
		return err
	}
	if user := auth.Username(c); user != "" {
		log.Debugf("note %s created by %s", note.ID, user)
	}
	return c.JSON(note)
}

func (s *FiberServer) deleteNote(c *fiber.Ctx) error {
	if err := s.notes.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	c.Status(fiber.StatusNoContent)
	return nil
}

func (s *FiberServer) unknownEndpoint(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown endpoint"})
}
