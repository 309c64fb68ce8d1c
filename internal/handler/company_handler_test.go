package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"orderscope/internal/domain"
	"orderscope/internal/handler"
	"orderscope/internal/port"
	"orderscope/mocks"
)

func TestCompanyHandler_Lookup(t *testing.T) {
	mockSvc := new(mocks.MockCompanyService)
	h := handler.NewCompanyHandler(mockSvc)

	expected := &port.EnrichmentResult{Name: "Acme Corp", Domain: "acme.example"}
	mockSvc.On("Lookup", mock.Anything, "Acme Corp").Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/companies/lookup?name=Acme+Corp", nil)

	h.Lookup(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCompanyHandler_Lookup_MissingName(t *testing.T) {
	mockSvc := new(mocks.MockCompanyService)
	h := handler.NewCompanyHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/companies/lookup", nil)

	h.Lookup(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestCompanyHandler_Lookup_Disabled(t *testing.T) {
	mockSvc := new(mocks.MockCompanyService)
	h := handler.NewCompanyHandler(mockSvc)

	mockSvc.On("Lookup", mock.Anything, "Acme Corp").Return(nil, domain.ErrEnrichmentDisabled)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/companies/lookup?name=Acme+Corp", nil)

	h.Lookup(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
