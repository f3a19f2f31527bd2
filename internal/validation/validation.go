/*
 * Copyright 2025 The Locahub Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package validation provides the validation functions.
package validation

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	usernameRegexString = `^[a-zA-Z0-9\-._]+$`
	phoneRegexString    = `^\+?[0-9\- ]+$`
	ratingRegexString   = `^[ABCD]$`

	dateLayout      = "2006-01-02"
	yearMonthLayout = "2006-01"
)

var (
	usernameRegex = regexp.MustCompile(usernameRegexString)
	phoneRegex    = regexp.MustCompile(phoneRegexString)
	ratingRegex   = regexp.MustCompile(ratingRegexString)
)

var (
	// defaultValidator validates the request fields given by callers of the
	// business logic.
	defaultValidator = validator.New()
	// defaultEn is the default translator instance for the 'en' locale.
	defaultEn = en.New()
	uni       = ut.New(defaultEn, defaultEn)

	trans, _ = uni.GetTranslator(defaultEn.Locale())
)

// FieldLevel is the field level interface.
type FieldLevel = validator.FieldLevel

// Violation is a single failed rule.
type Violation struct {
	Tag         string
	Field       string
	Err         error
	Description string
}

// Error returns the error message.
func (e Violation) Error() string {
	return e.Err.Error()
}

// StructError is the error returned by the validation of struct.
type StructError struct {
	Violations []Violation
}

// Error returns the error message.
func (s StructError) Error() string {
	sb := strings.Builder{}

	for _, v := range s.Violations {
		sb.WriteString(v.Description)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

// RegisterValidation registers a custom validation with the given tag.
func RegisterValidation(tag string, fn validator.Func) error {
	if err := defaultValidator.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register validation: %w", err)
	}
	return nil
}

// RegisterTranslation registers the message of the given tag. "{0}" in msg
// is replaced with the field name.
func RegisterTranslation(tag, msg string) error {
	if err := defaultValidator.RegisterTranslation(
		tag,
		trans,
		func(ut ut.Translator) error {
			if err := ut.Add(tag, msg, true); err != nil {
				return fmt.Errorf("register translation: %w", err)
			}
			return nil
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	); err != nil {
		return fmt.Errorf("register translation: %w", err)
	}
	return nil
}

// ValidateValue validates the value with the tag.
func ValidateValue(v interface{}, tag string) error {
	if err := defaultValidator.Var(v, tag); err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			return Violation{
				Tag:         e.Tag(),
				Err:         e,
				Description: e.Translate(trans),
			}
		}
	}
	return nil
}

// ValidateStruct validates the struct. Field names in violations follow the
// json tag of the field when it has one.
func ValidateStruct(s interface{}) error {
	if err := defaultValidator.Struct(s); err != nil {
		structError := &StructError{}
		for _, e := range err.(validator.ValidationErrors) {
			structError.Violations = append(structError.Violations, Violation{
				Tag:         e.Tag(),
				Field:       e.Field(),
				Err:         e,
				Description: e.Translate(trans),
			})
		}
		return structError
	}

	return nil
}

// IsDate reports whether str is a calendar date in YYYY-MM-DD form.
func IsDate(str string) bool {
	_, err := time.Parse(dateLayout, str)
	return err == nil
}

// IsYearMonth reports whether str is a month in YYYY-MM form.
func IsYearMonth(str string) bool {
	_, err := time.Parse(yearMonthLayout, str)
	return err == nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func mustRegister(tag, msg string, fn validator.Func) {
	if err := RegisterValidation(tag, fn); err != nil {
		fmt.Fprintf(os.Stderr, "validation %s: %v\n", tag, err)
		os.Exit(1)
	}
	if err := RegisterTranslation(tag, msg); err != nil {
		fmt.Fprintf(os.Stderr, "validation %s: %v\n", tag, err)
		os.Exit(1)
	}
}

func init() {
	defaultValidator.RegisterTagNameFunc(jsonFieldName)

	if err := entranslations.RegisterDefaultTranslations(defaultValidator, trans); err != nil {
		fmt.Fprintf(os.Stderr, "validation register default translations: %v\n", err)
		os.Exit(1)
	}

	mustRegister(
		"username",
		"{0} must only contain letters, numbers, hyphen, period and underscore",
		func(level validator.FieldLevel) bool {
			return usernameRegex.MatchString(level.Field().String())
		},
	)

	mustRegister(
		"phone",
		"{0} must be a valid phone number",
		func(level validator.FieldLevel) bool {
			return phoneRegex.MatchString(level.Field().String())
		},
	)

	mustRegister(
		"rating",
		"{0} must be one of A, B, C or D",
		func(level validator.FieldLevel) bool {
			return ratingRegex.MatchString(level.Field().String())
		},
	)

	mustRegister(
		"date",
		"{0} must be a date in YYYY-MM-DD format",
		func(level validator.FieldLevel) bool {
			return IsDate(level.Field().String())
		},
	)

	mustRegister(
		"year_month",
		"{0} must be a month in YYYY-MM format",
		func(level validator.FieldLevel) bool {
			return IsYearMonth(level.Field().String())
		},
	)
}
