package httperr

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"vidly/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const internalMessage = "Something failed."

var registerOnce sync.Once

// RegisterJSONFieldNames makes binding errors name fields by their json key.
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldError describes one failed binding rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status of err's category. Client errors carry err's
// message; anything unclassified becomes a generic 500.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		AbortWithError(c, status, err, internalMessage, nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), nil)
}

// AbortBinding answers 400 with one entry per failed field rule.
func AbortBinding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidInput), "Invalid request body.", nil)
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
	}
	AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidInput), validationMessage(fields[0]), fields)
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrInvalidInput), errs.Is(err, errs.ErrAlreadyProcessed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func validationMessage(fe FieldError) string {
	switch fe.Rule {
	case "required":
		return `"` + fe.Field + `" is required`
	case "min":
		return `"` + fe.Field + `" must be at least ` + fe.Param
	case "max", "lte":
		return `"` + fe.Field + `" must be at most ` + fe.Param
	case "gt":
		return `"` + fe.Field + `" must be greater than ` + fe.Param
	case "uuid":
		return `"` + fe.Field + `" must be a valid id`
	case "email":
		return `"` + fe.Field + `" must be a valid email`
	default:
		return `"` + fe.Field + `" is invalid`
	}
}
