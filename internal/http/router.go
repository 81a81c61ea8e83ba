package api

import (
	"fmt"
	stdhttp "net/http"

	"travelplanner/internal/catalog"
	intconfig "travelplanner/internal/config"
	"travelplanner/internal/domain/models"
	h "travelplanner/internal/http/handlers"
	"travelplanner/internal/http/middleware"
	"travelplanner/internal/openapi"
	"travelplanner/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Resources lists the CRUD collections served by the router.
var Resources = []openapi.Resource{
	{Name: "Trip", Path: "/trips", Model: models.Trip{}},
	{Name: "Destination", Path: "/destinations", Model: models.Destination{}, Filters: []string{"trip_id"}},
	{Name: "ItineraryItem", Path: "/itinerary", Aliases: []string{"/itinerary-items"}, Model: models.ItineraryItem{}, Filters: []string{"trip_id", "destination_id"}},
	{Name: "Accommodation", Path: "/accommodations", Model: models.Accommodation{}, Filters: []string{"trip_id"}},
	{Name: "Transport", Path: "/transport", Aliases: []string{"/transports"}, Model: models.Transport{}, Filters: []string{"trip_id"}},
	{Name: "Note", Path: "/notes", Model: models.Note{}, Filters: []string{"trip_id"}},
}

// OpenAPIDocument is the API description for the routes NewRouter registers.
func OpenAPIDocument() map[string]any {
	return openapi.Document(Resources)
}

func NewRouter(env intconfig.Env) (*gin.Engine, error) {
	cat, err := catalog.Load(env.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load destination catalog: %w", err)
	}
	h.SetCatalog(cat)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/", h.Health)
	r.GET("/db-check", h.DBCheck)
	r.GET("/routes", h.Routes)

	doc := OpenAPIDocument()
	r.GET("/openapi.json", func(c *gin.Context) { c.JSON(stdhttp.StatusOK, doc) })

	trips := mount[models.Trip](r, Resources[0], func(rid string) services.Resource[models.Trip] {
		return services.TripService{RequestID: rid}
	})
	trips.GET("/:id/summary.pdf", h.GetTripSummaryPDF)

	destinations := mount[models.Destination](r, Resources[1], func(rid string) services.Resource[models.Destination] {
		return services.DestinationService{RequestID: rid}
	})
	destinations.GET("/search", h.SearchDestinations)

	mount[models.ItineraryItem](r, Resources[2], func(rid string) services.Resource[models.ItineraryItem] {
		return services.ItineraryService{RequestID: rid}
	})
	mount[models.Accommodation](r, Resources[3], func(rid string) services.Resource[models.Accommodation] {
		return services.AccommodationService{RequestID: rid}
	})
	mount[models.Transport](r, Resources[4], func(rid string) services.Resource[models.Transport] {
		return services.TransportService{RequestID: rid}
	})
	mount[models.Note](r, Resources[5], func(rid string) services.Resource[models.Note] {
		return services.NoteService{RequestID: rid}
	})

	h.SetRouter(r)
	return r, nil
}

// mount registers a resource under its path and aliases and returns the primary group.
func mount[T any](r *gin.Engine, res openapi.Resource, factory h.ServiceFactory[T]) *gin.RouterGroup {
	primary := r.Group(res.Path)
	h.MountResource(primary, factory)
	for _, alias := range res.Aliases {
		h.MountResource(r.Group(alias), factory)
	}
	return primary
}
