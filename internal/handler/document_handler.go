package handler

import (
	"net/http"

	"github.com/Tiri0n/abkhazia-tax-service/internal/middleware"
	"github.com/Tiri0n/abkhazia-tax-service/internal/service"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/pagination"
	"github.com/Tiri0n/abkhazia-tax-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler sets up the routing dependencies for document endpoints
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	documents := router.Group("/documents", middleware.RequireAuth())
	{
		documents.GET("", h.List)
		documents.GET("/:id", h.Get)
		documents.POST("", h.Create)
	}
}

// List returns the caller's documents, most recently uploaded first
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page (all when omitted)"
// @Success      200    {object}  response.Response{data=[]model.Document}
// @Failure      500    {object}  response.Response
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	documents, err := h.documentService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	start, end := pagination.Parse(c).Window(len(documents))
	c.JSON(http.StatusOK, response.Success(http.StatusOK, documents[start:end]))
}

// Get returns a single document owned by the caller
// @Summary      Get document
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Document ID"
// @Success      200  {object}  response.Response{data=model.Document}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	document, err := h.documentService.Get(c.Request.Context(), userID, id)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, document))
}

// Create records a new document owned by the caller
// @Summary      Create document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateDocumentRequest  true  "Document Payload"
// @Success      201      {object}  response.Response{data=model.Document}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req service.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, bindErrorMessage(err)))
		return
	}

	document, err := h.documentService.Create(c.Request.Context(), userID, req)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, document))
}
