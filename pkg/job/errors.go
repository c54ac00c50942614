// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package job

import "fmt"

// ConfigurationError reports a missing or invalid job setting.
type ConfigurationError struct {
	// Setting is the settings key at fault, empty when not tied to one key.
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Setting == "" {
		return fmt.Sprintf("invalid job configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid setting %q: %s", e.Setting, e.Reason)
}

// Configurationf builds a ConfigurationError for the given setting.
func Configurationf(setting, format string, args ...interface{}) error {
	return &ConfigurationError{Setting: setting, Reason: fmt.Sprintf(format, args...)}
}

// UnsupportedFormatError is returned when a job type cannot produce the
// requested output format.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("this job type only renders images, and not %q", e.Format)
}
