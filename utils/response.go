package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// Validate runs struct checks for handlers that assemble their input
// outside ReadJSON, like the multipart listing form.
var Validate = validator.New()

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{
		"error":   title,
		"message": detail,
	})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(
		iris.StatusInternalServerError,
		"Internal Server Error",
		"An unexpected error occurred.",
		ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found.", ctx)
}

func CreateEmailAlreadyRegistered(ctx iris.Context) {
	CreateError(iris.StatusConflict, "Conflict", "Email already registered.", ctx)
}

// HandleValidationErrors translates ReadJSON/validator failures into the
// common 400 envelope, listing the offending fields when available.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		validationErrors := make([]iris.Map, 0, len(errs))
		for _, fieldErr := range errs {
			validationErrors = append(validationErrors, iris.Map{
				"field": fieldErr.Field(),
				"tag":   fieldErr.Tag(),
				"value": fieldErr.Param(),
			})
		}

		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"error":   "Validation Error",
			"message": "One or more fields failed validation.",
			"fields":  validationErrors,
		})
		return
	}

	CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
}
