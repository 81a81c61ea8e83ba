package handlers

import (
	"io"
	"strconv"

	"travelplanner/internal/domain"
	"travelplanner/internal/validation"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ValidationError{Field: "id", Msg: "must be an integer", Err: err}
	}
	return id, nil
}

func readBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes+1))
	if err != nil {
		return nil, domain.ValidationError{Field: "body", Msg: "could not read request body", Err: err}
	}
	if len(raw) > maxBodyBytes {
		return nil, domain.ValidationError{Field: "body", Msg: "request body too large"}
	}
	return raw, nil
}

// bindQuery binds query parameters, reporting failures as validation errors.
func bindQuery(c *gin.Context, dst any) error {
	if err := c.ShouldBindQuery(dst); err != nil {
		return validation.Query(err, dst)
	}
	return nil
}
