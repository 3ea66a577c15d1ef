package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"foodmenu/internal/apierror"

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
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindQueryAndValidate is the query-string counterpart of bindAndValidate.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid query parameters: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

func runValidation(c *gin.Context, req interface{}) bool {
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

// validPrice reports whether p is strictly positive and exactly representable
// with at most two decimal places (9.99 passes, 9.999 does not). The check
// runs on the decimal itself, never on a float.
func validPrice(p decimal.Decimal) bool {
	return p.IsPositive() && p.Equal(p.Round(2))
}

// rejectPrice writes the 422 response for a price failing validPrice.
func rejectPrice(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{
		"price": "must be greater than 0 with at most 2 decimal places",
	}))
}

// parseID parses the :id path parameter. Returns false after writing the
// error response when the value is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the domain error taxonomy onto HTTP statuses.
// Unexpected errors are attached to the context so the ErrorHandler
// middleware logs them and responds 500.
func respondServiceError(c *gin.Context, err error) {
	var dependents *apierror.HasDependentsError
	switch {
	case errors.Is(err, apierror.ErrCategoryNotFound), errors.Is(err, apierror.ErrItemNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, apierror.ErrDuplicateName):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.As(err, &dependents):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}
