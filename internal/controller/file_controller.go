package controller

import (
	"errors"
	"log-explorer-backend/internal/decoder"
	"log-explorer-backend/internal/dto"
	"log-explorer-backend/internal/filestore"
	"log-explorer-backend/internal/model"
	"log-explorer-backend/internal/service"
	"log-explorer-backend/internal/store"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type FileController struct {
	fileQueryService service.FileQueryService
	sessions         store.SessionStore
	logsDirectory    string
}

func NewFileController(fileQueryService service.FileQueryService, sessions store.SessionStore, files filestore.Manager) *FileController {
	return &FileController{
		fileQueryService: fileQueryService,
		sessions:         sessions,
		logsDirectory:    files.GetRootDirectory(),
	}
}

func RegisterFileRoutes(router *gin.Engine, controller *FileController) {
	api := router.Group("/api")
	{
		api.GET("/health", controller.Health)
		api.GET("/files", controller.ListFiles)
		api.GET("/file/:filename", controller.GetFile)
	}
}

// Health godoc
// @Summary      Health check
// @Description  Reports service status, the served logs directory and the number of open sessions.
// @Tags         health
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Router       /api/health [get]
func (c *FileController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:        "OK",
		LogsDirectory: c.logsDirectory,
		Sessions:      c.sessions.Count(),
		Timestamp:     time.Now().UTC(),
	})
}

// ListFiles godoc
// @Summary      List log files
// @Description  Lists the files of the logs directory, most recently modified first.
// @Tags         files
// @Produce      json
// @Success      200 {object} dto.FileListResponse
// @Failure      404 {object} model.Response "Logs directory not found"
// @Failure      500 {object} model.Response "Internal server error"
// @Router       /api/files [get]
func (c *FileController) ListFiles(ctx *gin.Context) {
	resp, err := c.fileQueryService.ListFiles(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Failed to list log files")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetFile godoc
// @Summary      Get file content
// @Description  Returns the text content of one file of the logs directory. Gzip files are decompressed.
// @Tags         files
// @Produce      json
// @Param        filename path string true "File name"
// @Success      200 {object} dto.FileContentResponse
// @Failure      403 {object} model.Response "Path outside the logs directory"
// @Failure      404 {object} model.Response "File not found"
// @Failure      500 {object} model.Response "Internal server error"
// @Router       /api/file/{filename} [get]
func (c *FileController) GetFile(ctx *gin.Context) {
	resp, err := c.fileQueryService.GetFileContent(ctx.Request.Context(), ctx.Param("filename"))
	if err != nil {
		respondError(ctx, err, "Failed to read log file")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// respondError maps domain errors onto HTTP statuses. Client errors echo the
// error message; anything unexpected is logged and answered with fallback.
func respondError(ctx *gin.Context, err error, fallback string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, filestore.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, filestore.ErrFileNotFound),
		errors.Is(err, filestore.ErrDirectoryNotFound),
		errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, service.ErrEntryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, decoder.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, decoder.ErrUnsupportedFile):
		status = http.StatusUnsupportedMediaType
	case isParseError(err), errors.Is(err, decoder.ErrDecompress):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(fallback)
		ctx.JSON(status, model.NewResponse(fallback, nil))
		return
	}
	log.Warn().Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg(fallback)
	ctx.JSON(status, model.NewResponse(err.Error(), nil))
}
