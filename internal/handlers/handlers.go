package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validationErrors flattens validator errors into a field -> message map
// for the response body.
func validationErrors(err error) map[string]string {
	messages := make(map[string]string)
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return messages
}
