package catalog

import (
	"go.opentelemetry.io/otel/trace"
)

type CatalogHandler struct {
	tracer         trace.Tracer
	catalogService CatalogService
	defaultCountry string
}

func New(
	tracer trace.Tracer,
	catalogService CatalogService,
	defaultCountry string,
) *CatalogHandler {
	return &CatalogHandler{
		tracer:         tracer,
		catalogService: catalogService,
		defaultCountry: defaultCountry,
	}
}
