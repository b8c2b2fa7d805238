package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"posprep/app"
	domain "posprep/domain/report"
	"posprep/internal/errors"
	"posprep/internal/logging"
	"posprep/internal/report"
)

// Server exposes the validation service over HTTP. It is a thin
// transport: all semantics live behind the service boundary.
type Server struct {
	svc    *app.ValidationService
	logger *logging.Logger
}

// NewServer creates the HTTP surface around a validation service.
func NewServer(svc *app.ValidationService, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.DefaultLogger
	}
	return &Server{svc: svc, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), corsMiddleware())

	r.GET("/healthz", s.handleHealth)
	r.POST("/verify", s.handleVerify)
	r.POST("/verify/csv", s.handleVerifyCSV)
	r.POST("/apply", s.handleApply)
	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleVerify validates an uploaded workbook and responds with the
// full JSON report.
func (s *Server) handleVerify(c *gin.Context) {
	data, ok := s.readUpload(c)
	if !ok {
		return
	}
	rep, err := s.svc.Verify(c.Request.Context(), data)
	if err != nil {
		s.logger.Error("verify failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "report": rep})
}

// handleVerifyCSV validates an upload and responds with the flat
// record-set export.
func (s *Server) handleVerifyCSV(c *gin.Context) {
	data, ok := s.readUpload(c)
	if !ok {
		return
	}
	rep, err := s.svc.Verify(c.Request.Context(), data)
	if err != nil {
		s.logger.Error("verify failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out, err := report.CSVRenderer{}.Render(rep)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="validation_report.csv"`)
	c.Data(http.StatusOK, "text/csv", out)
}

// handleApply applies accepted suggestions to an uploaded workbook and
// responds with the corrected copy. Accepted issues arrive as a JSON
// array in the "issues" form field.
func (s *Server) handleApply(c *gin.Context) {
	data, ok := s.readUpload(c)
	if !ok {
		return
	}

	var accepted []domain.Issue
	raw := c.PostForm("issues")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no accepted issues provided"})
		return
	}
	if err := json.Unmarshal([]byte(raw), &accepted); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "issues field is not valid JSON"})
		return
	}

	fixed, err := s.svc.ApplyAccepted(c.Request.Context(), data, accepted)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.HasCode(err, errors.CodeInvalidInput) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="corrected.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", fixed)
}

// readUpload pulls the multipart "file" field, rejecting missing or
// empty uploads before the engine sees them.
func (s *Server) readUpload(c *gin.Context) ([]byte, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file part"})
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file cannot be opened"})
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil || len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty file"})
		return nil, false
	}
	return data, true
}
