package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"orderscope/internal/service"
)

// CompanyHandler handles company-enrichment lookups.
type CompanyHandler struct {
	companies service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companies service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// Lookup handles GET /companies/lookup?name=...
func (h *CompanyHandler) Lookup(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_NAME", "query parameter 'name' is required")
		return
	}
	result, err := h.companies.Lookup(c.Request.Context(), name)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, result)
}
