package controller

import (
	"errors"
	"log-explorer-backend/internal/dto"
	"log-explorer-backend/internal/model"
	"log-explorer-backend/internal/parser"
	"log-explorer-backend/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type LogController struct {
	logSessionService service.LogSessionService
}

func NewLogController(logSessionService service.LogSessionService) *LogController {
	return &LogController{
		logSessionService: logSessionService,
	}
}

func RegisterLogRoutes(router *gin.Engine, controller *LogController) {
	v1 := router.Group("/api/v1/sessions")
	{
		v1.POST("", controller.CreateSession)
		v1.DELETE("/:id", controller.DeleteSession)
		v1.GET("/:id/logs", controller.GetLogs)
		v1.GET("/:id/logs/:entryId", controller.GetLogEntry)
		v1.GET("/:id/stats", controller.GetStats)
		v1.GET("/:id/facets", controller.GetFacets)
	}
}

func isParseError(err error) bool {
	return errors.Is(err, parser.ErrEmptyInput) ||
		errors.Is(err, parser.ErrNoEntriesFound) ||
		errors.Is(err, parser.ErrFallbackParse)
}

// CreateSession godoc
// @Summary      Load a log file
// @Description  Parses an uploaded file (multipart field "file") or a file of the logs directory (JSON body with fileName) and opens a browsing session on it.
// @Tags         sessions
// @Accept       multipart/form-data
// @Accept       json
// @Produce      json
// @Param        file    formData  file                 false  "Log file (.log, .txt or .gz)"
// @Param        request body      dto.LoadFileRequest  false  "File of the logs directory"
// @Success      201 {object} dto.SessionSummary
// @Failure      400 {object} model.Response "Invalid request"
// @Failure      413 {object} model.Response "File too large"
// @Failure      415 {object} model.Response "Unsupported file type"
// @Failure      422 {object} model.Response "File could not be parsed"
// @Router       /api/v1/sessions [post]
func (c *LogController) CreateSession(ctx *gin.Context) {
	var (
		summary *dto.SessionSummary
		err     error
	)

	if fileHeader, formErr := ctx.FormFile("file"); formErr == nil {
		f, openErr := fileHeader.Open()
		if openErr != nil {
			log.Error().Err(openErr).Str("file", fileHeader.Filename).Msg("Failed to open uploaded file")
			ctx.JSON(http.StatusBadRequest, model.NewResponse("Failed to read uploaded file", nil))
			return
		}
		defer f.Close()
		summary, err = c.logSessionService.LoadUpload(ctx.Request.Context(), fileHeader.Filename, fileHeader.Size, f)
	} else {
		var req dto.LoadFileRequest
		if bindErr := ctx.ShouldBindJSON(&req); bindErr != nil {
			log.Warn().Err(bindErr).Msg("Invalid load file request")
			ctx.JSON(http.StatusBadRequest, model.NewResponse("Provide a multipart \"file\" or a JSON body with fileName", nil))
			return
		}
		summary, err = c.logSessionService.LoadServerFile(ctx.Request.Context(), req.FileName)
	}

	if err != nil {
		respondError(ctx, err, "Failed to load log file")
		return
	}
	ctx.JSON(http.StatusCreated, summary)
}

// GetLogs godoc
// @Summary      Search and filter logs
// @Description  Filters the entries of a session by free text, level and date range, then sorts and paginates them. Stats cover the filtered entries.
// @Tags         sessions
// @Produce      json
// @Param        id             path   string  true   "Session ID"
// @Param        search         query  string  false  "Case-insensitive text matched against message, class, thread and level"
// @Param        level          query  string  false  "Level (INFO, WARN, ERROR, DEBUG, TRACE or ALL)"
// @Param        dateFrom       query  string  false  "First day included (YYYY-MM-DD)"
// @Param        dateTo         query  string  false  "Last day included (YYYY-MM-DD)"
// @Param        hideAuthErrors query  bool    false  "Hide authentication failure noise"
// @Param        sortBy         query  string  false  "Sort field (default: timestamp)" Enums(timestamp, level, thread, className, message)
// @Param        sortOrder      query  string  false  "Sort order (default: desc)" Enums(asc, desc)
// @Param        page           query  int     false  "Page number (default: 1)" minimum(1)
// @Param        size           query  int     false  "Entries per page (default: 100, max: 1000)" minimum(1) maximum(1000)
// @Success      200 {object} dto.LogSearchResponse
// @Failure      404 {object} model.Response "Session not found"
// @Router       /api/v1/sessions/{id}/logs [get]
func (c *LogController) GetLogs(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(ctx.DefaultQuery("size", "100"))
	if err != nil || size <= 0 {
		size = 100
	}
	hideAuthErrors, _ := strconv.ParseBool(ctx.DefaultQuery("hideAuthErrors", "false"))

	searchReq := dto.LogSearchRequest{
		Filter: model.LogFilter{
			Search:   ctx.Query("search"),
			Level:    ctx.Query("level"),
			DateFrom: ctx.Query("dateFrom"),
			DateTo:   ctx.Query("dateTo"),
		},
		HideAuthErrors: hideAuthErrors,
		SortBy:         ctx.DefaultQuery("sortBy", "timestamp"),
		SortOrder:      ctx.DefaultQuery("sortOrder", "desc"),
		Page:           page,
		Size:           size,
	}

	result, err := c.logSessionService.SearchLogs(ctx.Request.Context(), ctx.Param("id"), searchReq)
	if err != nil {
		respondError(ctx, err, "Failed to search logs")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetLogEntry godoc
// @Summary      Get one log entry
// @Tags         sessions
// @Produce      json
// @Param        id      path  string  true  "Session ID"
// @Param        entryId path  string  true  "Entry ID"
// @Success      200 {object} model.LogEntry
// @Failure      404 {object} model.Response "Session or entry not found"
// @Router       /api/v1/sessions/{id}/logs/{entryId} [get]
func (c *LogController) GetLogEntry(ctx *gin.Context) {
	entry, err := c.logSessionService.GetEntry(ctx.Request.Context(), ctx.Param("id"), ctx.Param("entryId"))
	if err != nil {
		respondError(ctx, err, "Failed to get log entry")
		return
	}
	ctx.JSON(http.StatusOK, entry)
}

// GetStats godoc
// @Summary      Level counts of a session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} model.LogStats
// @Failure      404 {object} model.Response "Session not found"
// @Router       /api/v1/sessions/{id}/stats [get]
func (c *LogController) GetStats(ctx *gin.Context) {
	stats, err := c.logSessionService.GetStats(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Failed to compute stats")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetFacets godoc
// @Summary      Distinct threads and classes of a session
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.FacetsResponse
// @Failure      404 {object} model.Response "Session not found"
// @Router       /api/v1/sessions/{id}/facets [get]
func (c *LogController) GetFacets(ctx *gin.Context) {
	facets, err := c.logSessionService.GetFacets(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, "Failed to list facets")
		return
	}
	ctx.JSON(http.StatusOK, facets)
}

// DeleteSession godoc
// @Summary      Close a session
// @Tags         sessions
// @Param        id path string true "Session ID"
// @Success      204
// @Failure      404 {object} model.Response "Session not found"
// @Router       /api/v1/sessions/{id} [delete]
func (c *LogController) DeleteSession(ctx *gin.Context) {
	if err := c.logSessionService.CloseSession(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, "Failed to close session")
		return
	}
	ctx.Status(http.StatusNoContent)
}
