package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/rajeshprivate007/taskflow-backend/pkg/translator"
)

// FieldError is one itemized validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// JsonErr is the failure envelope every handler returns: success is always
// false, message is translated, error carries pass-through detail and errors
// the itemized validation entries.
type JsonErr struct {
	Code    int          `json:"-"`
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Detail  string       `json:"error,omitempty"`
	Fields  []FieldError `json:"errors,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{Code: code, Success: false, Message: Translate(msgKey, lang)}
}

// CreateValidationError builds a 400 envelope carrying itemized field errors.
func CreateValidationError(lang string, fields []FieldError) JsonErr {
	err := CreateError(400, MsgValidationFailed, lang)
	err.Fields = fields
	return err
}

// CreateInternalError builds the generic 500 envelope, passing the underlying
// error text through.
func CreateInternalError(lang string, cause error) JsonErr {
	err := CreateError(500, MsgServerError, lang)
	if cause != nil {
		err.Detail = cause.Error()
	}
	return err
}

// Translate retrieves the translated message, falling back to the key itself.
func Translate(msgKey string, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
