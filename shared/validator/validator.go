package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"museum/shared/constant"
	"museum/shared/failure"
	"net/http"

	"github.com/go-playground/form/v4"
	val "github.com/go-playground/validator/v10"
)

var (
	validate    = val.New(val.WithRequiredStructEnabled())
	formDecoder = form.NewDecoder()
)

// Decode reads the request body into data without validating it; callers run ValidateStruct
// once every field is set. JSON bodies go through encoding/json, urlencoded and multipart forms
// through the struct's form tags. An empty body leaves data untouched.
func Decode[T any](r *http.Request, data *T) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constant.RequestHeaderContentType))

	switch mediaType {
	case constant.ContentTypeJSON:
		if err := json.NewDecoder(r.Body).Decode(data); err != nil && !errors.Is(err, io.EOF) {
			return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
		}
	case constant.ContentTypeMultipartFormData:
		if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to parse multipart form: %w", err)) //nolint:wrapcheck
		}

		if err := formDecoder.Decode(data, r.PostForm); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to decode form: %w", err)) //nolint:wrapcheck
		}
	default:
		if err := r.ParseForm(); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to parse form: %w", err)) //nolint:wrapcheck
		}

		if err := formDecoder.Decode(data, r.PostForm); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to decode form: %w", err)) //nolint:wrapcheck
		}
	}

	return nil
}

// ValidateStruct runs the validate tags of data and turns the first violation into a bad request.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
