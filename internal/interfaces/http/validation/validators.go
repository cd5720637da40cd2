// Package validation registers the request validators on gin's binding
// engine and turns binding failures into validation errors.
package validation

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hys-retail/storedesk/internal/domain/store"
	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
	"github.com/hys-retail/storedesk/internal/shared/errors"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// tagMessages are the client-facing messages for the custom tags.
var tagMessages = map[string]string{
	"required":        "Missing required fields",
	"ticket_status":   "Invalid status",
	"ticket_priority": "Invalid priority",
	"ticket_impact":   "Invalid impact",
	"ticket_category": "Invalid category",
	"close_code":      "Invalid close code",
	"store_id":        "Invalid store id",
	"day":             "Invalid date",
}

func enum(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	}
}

var customValidators = map[string]validator.Func{
	"ticket_status":   enum(func(s string) bool { return vo.TicketStatus(s).IsValid() }),
	"ticket_priority": enum(func(s string) bool { return vo.Priority(s).IsValid() }),
	"ticket_impact":   enum(func(s string) bool { return vo.Impact(s).IsValid() }),
	"ticket_category": enum(func(s string) bool { return vo.Category(s).IsValid() }),
	"close_code":      enum(func(s string) bool { return vo.CloseCode(s).IsValid() }),
	"store_id":        enum(store.ValidID),
	"day":             enum(func(s string) bool { _, err := ParseDay(s); return err == nil }),
}

// Register installs the custom tags on gin's validator. It is safe to call
// more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}

		// Report json or form names instead of Go field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})

		for tag, fn := range customValidators {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = fmt.Errorf("register %s: %w", tag, err)
				return
			}
		}
	})
	return registerErr
}

// BindingError converts an error from ShouldBind* into a validation error.
// The first failing field decides the message.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := tagMessages[fe.Tag()]; ok {
			return errors.NewValidationError(msg, fe.Field())
		}
		if fe.Tag() == "max" && fe.Kind() == reflect.String {
			return errors.NewValidationError(fmt.Sprintf("%s is too long", fe.Field()))
		}
		return errors.NewValidationError(fmt.Sprintf("Invalid %s", fe.Field()))
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr) ||
		stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewValidationError("Invalid JSON body", err.Error())
	}

	return errors.NewValidationError("Invalid request", err.Error())
}

// ParseDay accepts YYYY-MM-DD or an RFC 3339 timestamp.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
