package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"simlab/adapters/export"
	"simlab/app"
	"simlab/domain/core"
	"simlab/domain/simulation"
	"simlab/internal/errors"
)

// runResponse pairs the aggregate with the manifest identifying the run.
type runResponse struct {
	Manifest *app.RunManifest              `json:"manifest"`
	Results  *simulation.AggregatedResults `json:"results"`
}

func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.service.Info())
}

func (s *Server) handleRun(c *gin.Context) {
	var params simulation.Params
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  errors.CodeInvalidParameter,
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	if params.NumSimulations > s.maxSimulations {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  errors.CodeInvalidParameter,
			"error": fmt.Sprintf("num_simulations exceeds server limit of %d", s.maxSimulations),
		})
		return
	}

	results, manifest, err := s.service.RunTracked(params)
	if err != nil {
		s.logger.Warn("simulation run failed: %v", err)
		appErr := errors.FromDomain(err)
		status := http.StatusInternalServerError
		if core.IsInputError(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"code": appErr.Code, "error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, runResponse{Manifest: manifest, Results: results})
}

func (s *Server) handleExport(c *gin.Context) {
	var results simulation.AggregatedResults
	if err := c.ShouldBindJSON(&results); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  errors.CodeInvalidParameter,
			"error": "invalid request body: " + err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(export.CSV(&results)))
}
