package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"orderscope/internal/domain"
	"orderscope/internal/port"
	"orderscope/internal/service"
	"orderscope/mocks"
)

func TestCompanyService_Lookup(t *testing.T) {
	enricher := new(mocks.MockCompanyEnricher)
	svc := service.NewCompanyService(enricher)

	expected := &port.EnrichmentResult{Name: "Acme Corp", Domain: "acme.example", Industry: "Manufacturing"}
	enricher.On("Enrich", mock.Anything, "Acme Corp").Return(expected, nil)

	got, err := svc.Lookup(context.Background(), "Acme Corp")

	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestCompanyService_Lookup_Disabled(t *testing.T) {
	svc := service.NewCompanyService(nil)

	got, err := svc.Lookup(context.Background(), "Acme Corp")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrEnrichmentDisabled)
}
