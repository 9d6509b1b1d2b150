package api

import (
	"net/http"
	"strconv"

	"matchodds/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// writeError maps the error taxonomy onto HTTP statuses. Anything outside the
// three named kinds is a generic failure.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL_ERROR"
	switch {
	case apperr.IsNotFound(err):
		status, code = http.StatusNotFound, "NOT_FOUND"
		logger.WithError(err).Warn("resource not found")
	case apperr.IsConflict(err):
		status, code = http.StatusConflict, "CONFLICT"
		logger.WithError(err).Warn("conflict")
	case apperr.IsValidation(err):
		status, code = http.StatusBadRequest, "VALIDATION_ERROR"
		logger.WithError(err).Warn("validation error")
	default:
		logger.WithError(err).Error("request failed")
	}
	c.JSON(status, apiError{Status: status, Code: code, Message: err.Error(), Path: c.Request.URL.Path})
}

func writeBadRequest(c *gin.Context, logger *logrus.Logger, err error) {
	logger.WithError(err).Warn("malformed request body")
	c.JSON(http.StatusBadRequest, apiError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "request body is missing or malformed",
		Path:    c.Request.URL.Path,
	})
}

func pathID(c *gin.Context, logger *logrus.Logger, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		writeError(c, logger, apperr.Validation("invalid %s: %s", name, c.Param(name)))
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}
