package handlers

import (
	"net/http"

	"travelplanner/internal/domain"
	"travelplanner/internal/http/middleware"
	"travelplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// ServiceFactory builds a resource service for one request.
type ServiceFactory[T any] func(requestID string) services.Resource[T]

// MountResource registers the CRUD routes of one resource on g.
func MountResource[T any](g *gin.RouterGroup, newService ServiceFactory[T]) {
	svc := func(c *gin.Context) services.Resource[T] {
		return newService(middleware.GetRequestID(c))
	}

	g.POST("", func(c *gin.Context) {
		raw, err := readBody(c)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		rec, err := svc(c).Create(c.Request.Context(), raw)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	})

	g.GET("", func(c *gin.Context) {
		var q domain.ListQuery
		if err := bindQuery(c, &q); err != nil {
			RespondDomainError(c, err)
			return
		}
		page, err := svc(c).List(c.Request.Context(), q)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	})

	g.GET("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		rec, err := svc(c).Get(c.Request.Context(), id)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	})

	update := func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		raw, err := readBody(c)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		rec, err := svc(c).Update(c.Request.Context(), id, raw)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
	g.PUT("/:id", update)
	g.PATCH("/:id", update)

	g.DELETE("/:id", func(c *gin.Context) {
		id, err := parseID(c)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		if err := svc(c).Delete(c.Request.Context(), id); err != nil {
			RespondDomainError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
