package handler

import (
	"errors"
	"net/http"
	"reflect"

	"assettrack/internal/apierror"
	"assettrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps the service layer's typed errors onto HTTP statuses.
// Anything untyped is treated as internal and hidden behind a generic message.
func writeServiceError(c *gin.Context, err error) {
	var (
		validationErr *service.ValidationError
		transitionErr *service.StateTransitionError
		conflictErr   *service.ConflictError
		notFoundErr   *service.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		// Same status as DTO tag validation: a request that parses but fails
		// a semantic check is 422, not 400.
		c.JSON(http.StatusUnprocessableEntity, apierror.New(validationErr.Error()))
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, apierror.New(notFoundErr.Error()))
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, apierror.New(transitionErr.Error()))
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, apierror.New(conflictErr.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
