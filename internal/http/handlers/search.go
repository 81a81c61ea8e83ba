package handlers

import (
	"net/http"
	"sync"

	"travelplanner/internal/catalog"
	"travelplanner/internal/http/middleware"
	"travelplanner/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	catalogMu     sync.RWMutex
	searchCatalog *catalog.Catalog
)

// SetCatalog installs the catalogue used by SearchDestinations.
func SetCatalog(c *catalog.Catalog) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	searchCatalog = c
}

func SearchDestinations(c *gin.Context) {
	var q services.SearchQuery
	if err := bindQuery(c, &q); err != nil {
		RespondDomainError(c, err)
		return
	}
	catalogMu.RLock()
	cat := searchCatalog
	catalogMu.RUnlock()

	svc := services.SearchService{Catalog: cat, RequestID: middleware.GetRequestID(c)}
	res, err := svc.Search(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
