package handlers

import (
	"net/http"

	"travelplanner/internal/http/middleware"
	"travelplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// GetTripSummaryPDF returns the printable trip summary inline.
func GetTripSummaryPDF(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	svc := services.SummaryService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateTripSummary(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
