package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/dicri/evidencetrack/internal/core/domain"
)

// RequestValidator binds and validates one request stage at a time: body,
// then path parameters, then query. Handlers call the stages in that order
// and return on the first failure, so a request with a broken body never
// reports parameter errors. Failed stages produce a VALIDATION_ERROR whose
// items follow struct field declaration order.
type RequestValidator struct {
	v *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(tagFieldName)
	v.RegisterStructValidation(updateCaseFileRules, updateCaseFileRequest{})
	return &RequestValidator{v: v}
}

// tagFieldName makes validator report wire names (json/param/query tags)
// instead of Go field names.
func tagFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "param", "query"} {
		if name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]; name != "" && name != "-" {
			return name
		}
	}
	return fld.Name
}

// BindBody decodes and validates the JSON body stage.
func (rv *RequestValidator) BindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return bodyBindError(err)
	}
	return rv.check(dst)
}

// BindParams decodes and validates the path-parameter stage. Parameters
// arrive as text; numeric fields are coerced and rejected with a single
// field item when the text is not a valid number.
func (rv *RequestValidator) BindParams(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindPathParams(c, dst); err != nil {
		return textBindError(err)
	}
	return rv.check(dst)
}

// BindQuery decodes and validates the query-parameter stage.
func (rv *RequestValidator) BindQuery(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
		return textBindError(err)
	}
	return rv.check(dst)
}

func (rv *RequestValidator) check(value any) error {
	err := rv.v.Struct(value)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	items := make([]domain.ValidationErrorItem, 0, len(ve))
	for _, fe := range ve {
		items = append(items, domain.ValidationErrorItem{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return domain.NewValidationError(items)
}

// fieldPath strips the root struct name from the namespace, leaving the
// dotted wire path ("caseCode", "sender.email").
func fieldPath(fe validator.FieldError) string {
	if parts := strings.SplitN(fe.Namespace(), ".", 2); len(parts) == 2 {
		return parts[1]
	}
	return fe.Field()
}

// fieldMessage converts a single validation failure into a human-readable
// message.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "A valid email address is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must have at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("Must not exceed %s", fe.Param())
	case "gt":
		return "Must be a positive number"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	case "datetime":
		return "Must be a valid ISO 8601 datetime"
	case "required_if_rejected":
		return "Rejection reason is required when status is REJECTED"
	default:
		return fmt.Sprintf("Failed validation (%s)", fe.Tag())
	}
}

// bodyBindError normalizes JSON decode failures into the validation
// envelope: a typed field mismatch names the field, anything else reports
// the body as a whole.
func bodyBindError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Internal != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(he.Internal, &ute) && ute.Field != "" {
			return domain.NewValidationError([]domain.ValidationErrorItem{
				{Field: ute.Field, Message: "Invalid value for this field"},
			})
		}
	}
	return domain.NewValidationError([]domain.ValidationErrorItem{
		{Field: "body", Message: "Request body must be valid JSON"},
	})
}

// textBindError normalizes path/query coercion failures. Every coercion in
// this API is text-to-integer, so the message names the numeric contract.
func textBindError(err error) error {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return domain.NewValidationError([]domain.ValidationErrorItem{
			{Field: be.Field, Message: "Must be a numeric value"},
		})
	}
	return err
}
