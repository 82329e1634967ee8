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

package backend

import (
	"fmt"
)

// ID generators.
const (
	IDGeneratorUUID = "uuid"
	IDGeneratorXID  = "xid"
)

// Config is the configuration for creating a Backend instance.
type Config struct {
	// SurfaceCacheSize is the number of rendered surfaces kept for export.
	SurfaceCacheSize int `yaml:"SurfaceCacheSize"`

	// ExportScale is the magnification layouts are captured at when exported.
	// Values below 2 are raised to 2.
	ExportScale float64 `yaml:"ExportScale"`

	// IDGenerator is the kind of identifiers given to new documents, entries
	// and items: "uuid" or "xid".
	IDGenerator string `yaml:"IDGenerator"`
}

// Validate validates this config.
func (c *Config) Validate() error {
	if c.SurfaceCacheSize < 0 {
		return fmt.Errorf(
			`invalid argument "%d" for "--surface-cache-size" flag`,
			c.SurfaceCacheSize,
		)
	}

	if c.ExportScale < 0 {
		return fmt.Errorf(
			`invalid argument "%v" for "--export-scale" flag`,
			c.ExportScale,
		)
	}

	switch c.IDGenerator {
	case "", IDGeneratorUUID, IDGeneratorXID:
	default:
		return fmt.Errorf(
			`invalid argument "%s" for "--id-generator" flag: must be one of %s, %s`,
			c.IDGenerator,
			IDGeneratorUUID,
			IDGeneratorXID,
		)
	}

	return nil
}
