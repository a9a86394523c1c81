package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/catalog"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httpresp"
)

// CatalogHandler serves the public service list and staff roster.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	httpresp.List(c, catalog.Services())
}

func (h *CatalogHandler) ListStaff(c *gin.Context) {
	httpresp.List(c, catalog.Staff())
}
