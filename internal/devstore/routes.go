package devstore

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"notekeep/internal/domain/entity"
)

// Server is the assembled echo application.
type Server struct {
	echo    *echo.Echo
	service *NoteService
}

func NewServer(db *gorm.DB, secret string) *Server {
	s := &Server{
		echo:    echo.New(),
		service: NewNoteService(NewNoteRepository(db)),
	}
	s.echo.HideBanner = true
	s.echo.Use(middleware.CORS())
	s.echo.Use(middleware.BodyLimit("1M"))

	api := s.echo.Group("/api", bearerAuth(secret))
	api.GET("/notes", s.listNotes)
	api.POST("/notes", s.createNote)
	api.PATCH("/notes/:id", s.updateNote)
	api.DELETE("/notes/:id", s.deleteNote)

	// Docker Compose healthcheck
	s.echo.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	return s
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Handler exposes the echo app for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) listNotes(c echo.Context) error {
	recs, apierr := s.service.ListNotes(c.Get("sub").(string))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"notes": recs}
	return c.JSON(http.StatusOK, &resp)
}

func (s *Server) createNote(c echo.Context) error {
	var rec entity.NoteRecord
	if err := c.Bind(&rec); err != nil {
		return c.JSON(MalformedBodyError.Code(), MalformedBodyError)
	}

	created, apierr := s.service.CreateNote(c.Get("sub").(string), &rec)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateNote(c echo.Context) error {
	var rec entity.NoteRecord
	if err := c.Bind(&rec); err != nil {
		return c.JSON(MalformedBodyError.Code(), MalformedBodyError)
	}

	updated, apierr := s.service.UpdateNote(c.Get("sub").(string), c.Param("id"), &rec)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteNote(c echo.Context) error {
	apierr := s.service.DeleteNote(c.Get("sub").(string), c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}
