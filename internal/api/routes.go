package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wailsba22/arabic-explainer/internal/ai"
	"github.com/wailsba22/arabic-explainer/internal/heuristic"
)

const (
	localModel = "local-heuristic"

	fallbackMessage     = "AI models busy - using local analysis"
	missingInputMessage = "Missing code or language"
	methodMessage       = "Method not allowed"
	notFoundMessage     = "Not found"
	serverErrorMessage  = "خطأ في الخادم"
	requestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
)

var (
	corsMethods = []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"}
	corsHeaders = []string{
		"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version", "Content-Length",
		"Content-MD5", "Content-Type", "Date", "X-Api-Version", requestIDHeader,
	}
)

// Config defines server dependencies.
type Config struct {
	// AllowedOrigins restricts CORS; empty allows every origin.
	AllowedOrigins []string
	AIConfig       ai.Config
	// Explainer replaces the chain built from AIConfig when set.
	Explainer ai.Explainer
}

// Server wires HTTP handlers to the provider chain and the local heuristic.
type Server struct {
	explainer      ai.Explainer
	allowedOrigins []string
}

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	explainer := cfg.Explainer
	if explainer == nil {
		chain, err := ai.New(cfg.AIConfig, logrus.StandardLogger())
		if err != nil {
			return nil, fmt.Errorf("ai chain: %w", err)
		}
		explainer = chain
	}

	if models := explainer.Models(); len(models) > 0 {
		logrus.WithField("models", strings.Join(models, ",")).Info("AI explainer enabled")
	} else {
		logrus.Warn("no AI provider configured - every explain request will fall back to local analysis")
	}

	return &Server{
		explainer:      explainer,
		allowedOrigins: cfg.AllowedOrigins,
	}, nil
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	corsCfg := cors.DefaultConfig()
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowMethods = corsMethods
	corsCfg.AllowHeaders = corsHeaders
	corsCfg.ExposeHeaders = []string{requestIDHeader}
	corsCfg.OptionsResponseStatusCode = http.StatusOK
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("cors config: %w", err)
	}

	r.Use(requestLogger(), recovery(), cors.New(corsCfg))
	r.NoMethod(func(c *gin.Context) {
		renderMessage(c, http.StatusMethodNotAllowed, methodMessage)
	})
	r.NoRoute(func(c *gin.Context) {
		renderMessage(c, http.StatusNotFound, notFoundMessage)
	})

	api := r.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.GET("/config", s.handleConfig)
		api.POST("/explain", s.handleExplain)
		api.OPTIONS("/explain", s.handlePreflight)
		api.POST("/analyze", s.handleAnalyze)
		api.OPTIONS("/analyze", s.handlePreflight)
	}

	return r, nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	models := s.explainer.Models()
	if models == nil {
		models = []string{}
	}
	c.JSON(http.StatusOK, ConfigResponse{
		AIEnabled:  s.explainer.Enabled(),
		Models:     models,
		LocalModel: localModel,
		Languages:  heuristic.Languages(),
	})
}

// Preflight requests without an Origin header bypass the CORS middleware.
func (s *Server) handlePreflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

func renderMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
