package handlers

import (
	"net/http"
	"strconv"

	"sheetbase/internal/responses"
	"sheetbase/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicHandler serves the embeddable read and form-submission surface.
type PublicHandler struct {
	queryService *services.QueryService
}

func NewPublicHandler(queryService *services.QueryService) *PublicHandler {
	return &PublicHandler{queryService: queryService}
}

// Rows returns rows for embeddable display. ?columns is a comma-separated
// column filter; unknown names are dropped, not errored. ?limit caps the
// row count when numeric.
func (h *PublicHandler) Rows(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid file ID")
		return
	}

	var requested []string
	if raw := c.Query("columns"); raw != "" {
		requested = services.SplitColumnList(raw)
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	result, err := h.queryService.PublicRows(c.Request.Context(), id, requested, limit)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.Success(c, http.StatusOK, result, "")
}

func (h *PublicHandler) Search(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid file ID")
		return
	}

	result, err := h.queryService.PublicSearch(c.Request.Context(), id, c.Query("q"))
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.Success(c, http.StatusOK, result, "")
}

// SubmitRow appends one row from an embedded form, values keyed by column
// identifier.
func (h *PublicHandler) SubmitRow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid file ID")
		return
	}

	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid form data")
		return
	}

	if err := h.queryService.InsertRow(c.Request.Context(), id, fields); err != nil {
		responses.FromError(c, err)
		return
	}

	responses.Success(c, http.StatusCreated, nil, "Data successfully added")
}
