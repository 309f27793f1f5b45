package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/arena/internal/model"
)

// Runner is the arena surface the HTTP layer needs.
type Runner interface {
	Run(ctx context.Context, seed string) (*model.Report, error)
}

type Server struct {
	arena   Runner
	names   []string
	arbiter string
}

func NewServer(arena Runner, providerNames []string, arbiter string) *Server {
	return &Server{
		arena:   arena,
		names:   providerNames,
		arbiter: arbiter,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/run", s.RunRound)
	r.GET("/providers", s.ListProviders)

	return r
}

type RunRequest struct {
	Seed string `json:"seed"`
}

func (s *Server) RunRound(c *gin.Context) {
	var req RunRequest
	// Body is optional; an empty body means no seed.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}

	report, err := s.arena.Run(c.Request.Context(), req.Seed)
	if err != nil {
		if report != nil {
			// Unparseable verdict: the degraded report is still worth returning.
			log.Printf("Round degraded: %v", err)
			c.JSON(http.StatusOK, report)
			return
		}
		log.Printf("Round failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to run round"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"providers": s.names,
		"arbiter":   s.arbiter,
	})
}
