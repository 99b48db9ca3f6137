package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wailsba22/arabic-explainer/internal/ai"
	"github.com/wailsba22/arabic-explainer/internal/heuristic"
)

func (s *Server) handleExplain(c *gin.Context) {
	req, ok := bindExplainRequest(c)
	if !ok {
		return
	}

	logger := entryFor(c).WithFields(logrus.Fields{
		"language":    req.Language,
		"code_length": len(req.Code),
	})

	explanation, err := s.explainer.Explain(c.Request.Context(), ai.BuildPrompt(req.Code, req.Language))
	if err != nil {
		logger.WithError(err).Warn("falling back to local analysis")
		c.JSON(http.StatusOK, FallbackResponse{Fallback: true, Message: fallbackMessage})
		return
	}

	logger.WithField("model", explanation.Model).Info("explanation served")
	c.JSON(http.StatusOK, ExplainResponse{Explanation: explanation.Text, Model: explanation.Model})
}

func (s *Server) handleAnalyze(c *gin.Context) {
	req, ok := bindExplainRequest(c)
	if !ok {
		return
	}

	analysis := heuristic.Analyze(req.Code, req.Language)
	entryFor(c).WithFields(logrus.Fields{
		"language":    req.Language,
		"code_length": len(req.Code),
		"complexity":  analysis.Complexity,
	}).Debug("local analysis served")

	c.JSON(http.StatusOK, AnalyzeResponse{
		Explanation: heuristic.Render(analysis),
		Model:       localModel,
		Analysis:    analysis,
	})
}

// bindExplainRequest writes the 400 reply itself; malformed JSON, wrong field
// types and blank fields are all reported as missing input.
func bindExplainRequest(c *gin.Context) (ExplainRequest, bool) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Valid() {
		if err != nil {
			entryFor(c).WithError(err).Debug("invalid explain request body")
		}
		renderMessage(c, http.StatusBadRequest, missingInputMessage)
		return ExplainRequest{}, false
	}
	return req, true
}
