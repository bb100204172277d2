package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"sheetbase/internal/responses"
	"sheetbase/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FileHandler struct {
	ingestService *services.IngestService
	fileService   *services.FileService
	queryService  *services.QueryService
}

func NewFileHandler(
	ingestService *services.IngestService,
	fileService *services.FileService,
	queryService *services.QueryService,
) *FileHandler {
	return &FileHandler{
		ingestService: ingestService,
		fileService:   fileService,
		queryService:  queryService,
	}
}

func (h *FileHandler) Upload(c *gin.Context) {
	userID, err := callerUUID(c)
	if err != nil {
		responses.Fail(c, http.StatusUnauthorized, err, "Unauthorized")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "No file uploaded")
		return
	}

	// The ceiling applies before the body is read into memory.
	if max := h.ingestService.MaxUploadBytes(); fileHeader.Size > max {
		responses.Fail(c, http.StatusBadRequest, nil, fmt.Sprintf("File exceeds %dMB limit", max>>20))
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to open uploaded file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		responses.Fail(c, http.StatusInternalServerError, err, "Failed to read uploaded file")
		return
	}

	upload, err := h.ingestService.Ingest(
		c.Request.Context(),
		data,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		userID,
	)
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.Success(c, http.StatusCreated, upload, "File uploaded and processed successfully")
}

func (h *FileHandler) List(c *gin.Context) {
	entries, err := h.fileService.List(c.Request.Context())
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.Success(c, http.StatusOK, entries, "")
}

func (h *FileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid file ID")
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), id); err != nil {
		responses.FromError(c, err)
		return
	}

	responses.Success(c, http.StatusOK, nil, "File and its data deleted successfully")
}

func (h *FileHandler) Page(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid file ID")
		return
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil || page < 1 {
			page = 1
		}
	}

	result, err := h.queryService.Page(c.Request.Context(), id, page, c.Query("search"))
	if err != nil {
		responses.FromError(c, err)
		return
	}

	responses.Success(c, http.StatusOK, result, "")
}

type fileConfigRequest struct {
	HeaderRow      *bool    `json:"header_row"`
	VisibleColumns []string `json:"visible_columns"`
}

func (h *FileHandler) GetConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid file ID")
		return
	}

	cfg, err := h.fileService.GetConfig(c.Request.Context(), id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.Success(c, http.StatusOK, cfg, "")
}

func (h *FileHandler) SetConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid file ID")
		return
	}

	var req fileConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	headerRow := true
	if req.HeaderRow != nil {
		headerRow = *req.HeaderRow
	}

	cfg, err := h.fileService.SetConfig(c.Request.Context(), id, headerRow, req.VisibleColumns)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	responses.Success(c, http.StatusOK, cfg, "File config saved")
}

func callerUUID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get("userId")
	if !exists {
		return uuid.Nil, fmt.Errorf("no caller identity in context")
	}
	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		return uuid.Parse(v)
	default:
		return uuid.Nil, fmt.Errorf("invalid user id type: %T", v)
	}
}
