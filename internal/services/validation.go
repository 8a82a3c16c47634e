package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterStructValidation(priceScale, models.CreateProductRequest{}, models.UpdateProductRequest{})
	return v
}

// Validate checks a request against its validate tags before any rule runs.
// It returns a *ValidationError, which unwraps to ErrValidation.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return &ValidationError{Message: err.Error(), Fields: map[string]string{}}
	}

	ve := &ValidationError{Fields: make(map[string]string, len(validationErrors))}
	for i, e := range validationErrors {
		msg := fieldMessage(e)
		if i == 0 {
			ve.Field = e.Field()
			ve.Message = msg
		}
		ve.Fields[e.Field()] = msg
	}
	return ve
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", e.Field())
	case "max":
		return fmt.Sprintf("Field '%s' cannot exceed %s characters", e.Field(), e.Param())
	case "gt":
		return fmt.Sprintf("Field '%s' must be greater than %s", e.Field(), e.Param())
	case "gte", "min":
		return fmt.Sprintf("Field '%s' must be at least %s", e.Field(), e.Param())
	case "scale":
		return fmt.Sprintf("Field '%s' cannot have more than %s decimal places", e.Field(), e.Param())
	}
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// decimalValue lets numeric tags such as gt=0 apply to decimal fields.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// priceScale rejects prices with more than two decimal places.
func priceScale(sl validator.StructLevel) {
	var price decimal.Decimal
	switch req := sl.Current().Interface().(type) {
	case models.CreateProductRequest:
		price = req.Price
	case models.UpdateProductRequest:
		price = req.Price
	default:
		return
	}
	if !price.Equal(price.Round(2)) {
		sl.ReportError(price, "price", "Price", "scale", "2")
	}
}
