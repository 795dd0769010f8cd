package onboarding

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/models"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// MaxAgeYears bounds how far in the past a date of birth may lie.
const MaxAgeYears = 130

// FieldErrors maps a form field (its JSON name) to a user-facing message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return strings.Join(parts, "; ")
}

type basicInfo struct {
	Name        string `json:"name" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02,dob"`
	Sex         string `json:"sex" validate:"required,oneof=male female other prefer-not-to-say"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type todayKey struct{}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func basicInfoValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		})
		_ = v.RegisterValidationCtx("dob", validDateOfBirth)
		validate = v
	})
	return validate
}

// validDateOfBirth rejects dates after today or more than MaxAgeYears ago.
func validDateOfBirth(ctx context.Context, fl validator.FieldLevel) bool {
	d, err := time.Parse(models.DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	today, ok := ctx.Value(todayKey{}).(time.Time)
	if !ok {
		return true
	}
	return !d.After(today) && !d.Before(today.AddDate(-MaxAgeYears, 0, 0))
}

var messages = map[string]string{
	"name.required":        "Name is required",
	"dateOfBirth.required": "Date of birth is required",
	"dateOfBirth.datetime": "Enter date of birth as YYYY-MM-DD",
	"dateOfBirth.dob":      "Date of birth must not be in the future or more than 130 years ago",
	"sex.required":         "Please select your sex",
	"sex.oneof":            "Please select a listed option",
	"email.email":          "Please enter a valid email address",
}

// ValidateBasicInfo checks the first step of the form. Blocking problems
// come back as errs; an unusual email only produces a warning.
func ValidateBasicInfo(p models.UserProfile, today time.Time) (errs, warnings FieldErrors) {
	errs, warnings = FieldErrors{}, FieldErrors{}

	in := basicInfo{
		Name:        strings.TrimSpace(p.Name),
		DateOfBirth: strings.TrimSpace(p.DateOfBirth),
		Sex:         p.Sex,
		Email:       strings.TrimSpace(p.Email),
	}
	ctx := context.WithValue(context.Background(), todayKey{}, dateOnly(today))

	err := basicInfoValidator().StructCtx(ctx, in)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs, warnings
	}
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		if fe.Field() == "email" {
			warnings[fe.Field()] = msg
			continue
		}
		errs[fe.Field()] = msg
	}
	return errs, warnings
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
