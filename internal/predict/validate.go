package predict

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var fieldRanges = map[string][2]float64{
	"max_new_tokens": {MinNewTokens, MaxNewTokens},
	"temperature":    {MinTemperature, MaxTemperature},
	"top_p":          {MinTopP, MaxTopP},
}

// Validate checks the numeric parameters against their bounds. Values on a
// boundary are valid.
func Validate(req Request) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		r := fieldRanges[fe.Field()]
		return &BoundsError{Field: fe.Field(), Value: fe.Value(), Min: r[0], Max: r[1]}
	}
	return err
}
