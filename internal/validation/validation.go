/*
 * Copyright 2026 The Folio Authors. All rights reserved.
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
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

const (
	// fieldNameRegexString matches the JSON names of resume fields, e.g.
	// "position" or "startDate".
	fieldNameRegexString          = `^[a-z][a-zA-Z]*$`
	timeDurationFormatRegexString = `^(\d{1,2}h\s?)?(\d{1,3}m\s?)?(\d{1,3}s\s?)?(\d{1,4}ms)?$`
)

var (
	fieldNameRegex          = regexp.MustCompile(fieldNameRegexString)
	timeDurationFormatRegex = regexp.MustCompile(timeDurationFormatRegexString)
)

var (
	// defaultValidator is the validation instance shared by the packages that
	// accept user provided values: operation requests, creation fields and
	// the server configuration.
	defaultValidator = validator.New()
	// defaultEn is the default translator instance for the 'en' locale.
	defaultEn = en.New()
	// uni is the UniversalTranslator instance set with
	// the fallback locale and locales it should support.
	uni = ut.New(defaultEn, defaultEn)

	// trans is the specified translator for the given locale,
	// or fallback if not found.
	trans, _ = uni.GetTranslator(defaultEn.Locale())
)

// FieldLevel is the field level interface.
type FieldLevel = validator.FieldLevel

// Violation is the error returned by the validation.
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
		sb.WriteString(v.Error())
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

// Descriptions returns the translated description of each violation.
func (s StructError) Descriptions() []string {
	descriptions := make([]string, 0, len(s.Violations))
	for _, v := range s.Violations {
		descriptions = append(descriptions, v.Description)
	}
	return descriptions
}

// RegisterValidation is shortcut of defaultValidator.RegisterValidation
// that register custom validation with given tag, and it can be used in init.
func RegisterValidation(tag string, fn validator.Func) error {
	if err := defaultValidator.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register validation: %w", err)
	}
	return nil
}

// RegisterTranslation is shortcut of defaultValidator.RegisterTranslation
// that registers translations against the provided tag with given msg.
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

// ValidateValue validates the value with the tag
func ValidateValue(v any, tag string) error {
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

// ValidateStruct validates the struct
func ValidateStruct(s any) error {
	if err := defaultValidator.Struct(s); err != nil {
		structError := &StructError{}
		for _, e := range err.(validator.ValidationErrors) {
			structError.Violations = append(structError.Violations, Violation{
				Tag:         e.Tag(),
				Field:       e.StructField(),
				Err:         e,
				Description: e.Translate(trans),
			})
		}
		return structError
	}

	return nil
}

func init() {
	if err := entranslations.RegisterDefaultTranslations(defaultValidator, trans); err != nil {
		fmt.Fprintln(os.Stderr, "validation register default translations: ", err)
		os.Exit(1)
	}

	if err := RegisterValidation("field_name", func(level validator.FieldLevel) bool {
		return fieldNameRegex.MatchString(level.Field().String())
	}); err != nil {
		fmt.Fprintln(os.Stderr, "validation field_name: ", err)
		os.Exit(1)
	}
	if err := RegisterTranslation("field_name", "{0} must be a camelCase field name"); err != nil {
		fmt.Fprintln(os.Stderr, "validation field_name: ", err)
		os.Exit(1)
	}

	if err := RegisterValidation("duration", func(level validator.FieldLevel) bool {
		return timeDurationFormatRegex.MatchString(level.Field().String())
	}); err != nil {
		fmt.Fprintln(os.Stderr, "validation duration: ", err)
		os.Exit(1)
	}
	if err := RegisterTranslation("duration", "{0} must be a valid time duration string format"); err != nil {
		fmt.Fprintln(os.Stderr, "validation duration: ", err)
		os.Exit(1)
	}
}
