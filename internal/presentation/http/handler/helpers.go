package handler

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sangkips/salestrack-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/utils"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report JSON field names
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
}

// bindJSON decodes the request body into req. Malformed JSON is a 400,
// failed binding rules are a 422 listing each field.
func bindJSON(c *gin.Context, req interface{}) bool {
	useJSONFieldNames()
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		response.ValidationError(c, fieldErrors(validationErrors))
		return false
	}
	response.BadRequest(c, "Invalid request body")
	return false
}

func fieldErrors(errs validator.ValidationErrors) []apperror.FieldError {
	out := make([]apperror.FieldError, 0, len(errs))
	for _, fe := range errs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out = append(out, apperror.FieldError{Field: field, Message: validationMessage(fe)})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// bindQuery decodes query parameters into req
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return false
	}
	return true
}

// parseID reads the :id path parameter
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional UUID filter value
func queryUUID(c *gin.Context, field, value string) (*uuid.UUID, bool) {
	id, err := utils.ParseOptionalUUID(value)
	if err != nil {
		response.Error(c, apperror.NewFieldError(field, "must be a valid UUID"))
		return nil, false
	}
	return id, true
}

// queryEnum parses an optional enum filter value
func queryEnum[E ~string](c *gin.Context, field, value string, parse func(string) (E, bool)) (*E, bool) {
	if strings.TrimSpace(value) == "" {
		return nil, true
	}
	v, ok := parse(value)
	if !ok {
		response.Error(c, apperror.NewFieldError(field, "is not a valid value"))
		return nil, false
	}
	return &v, true
}
