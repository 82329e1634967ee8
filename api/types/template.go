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

package types

import (
	"fmt"

	"github.com/folio-team/folio/pkg/errors"
)

// ErrInvalidTemplate is returned when a template discriminant is outside the
// closed set of templates.
var ErrInvalidTemplate = errors.InvalidArgument("invalid template").WithCode("ErrInvalidTemplate")

// TemplateType selects one of the fixed rendering variants of a resume.
type TemplateType string

// The closed set of templates.
const (
	TemplateMinimal      TemplateType = "minimal"
	TemplateProfessional TemplateType = "professional"
	TemplateCreative     TemplateType = "creative"
	TemplateModern       TemplateType = "modern"
	TemplateExecutive    TemplateType = "executive"
)

// DefaultTemplate is the template of new documents and the fallback for
// unknown discriminants.
const DefaultTemplate = TemplateMinimal

// TemplateTypes returns every template in display order.
func TemplateTypes() []TemplateType {
	return []TemplateType{
		TemplateMinimal,
		TemplateProfessional,
		TemplateCreative,
		TemplateModern,
		TemplateExecutive,
	}
}

// String returns the discriminant.
func (t TemplateType) String() string {
	return string(t)
}

// Valid returns whether the discriminant belongs to the closed set.
func (t TemplateType) Valid() bool {
	switch t {
	case TemplateMinimal, TemplateProfessional, TemplateCreative, TemplateModern, TemplateExecutive:
		return true
	default:
		return false
	}
}

// ParseTemplateType converts the given string to a TemplateType.
func ParseTemplateType(s string) (TemplateType, error) {
	t := TemplateType(s)
	if !t.Valid() {
		return "", fmt.Errorf("parse %q: %w", s, ErrInvalidTemplate)
	}
	return t, nil
}

// TemplateTypeOrDefault returns t when it is valid and DefaultTemplate
// otherwise. The second return value reports whether a fallback happened.
func TemplateTypeOrDefault(t TemplateType) (TemplateType, bool) {
	if t.Valid() {
		return t, false
	}
	return DefaultTemplate, true
}
