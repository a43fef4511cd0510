// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package builder

import (
	"log/slog"
)

// RedeemerSetBuilderOptionFunc is a type that represents functions that modify the RedeemerSetBuilder config
type RedeemerSetBuilderOptionFunc func(*RedeemerSetBuilder)

// WithLogger specifies the logger to use. A nil logger uses slog.Default()
func WithLogger(logger *slog.Logger) RedeemerSetBuilderOptionFunc {
	return func(b *RedeemerSetBuilder) {
		b.logger = logger
	}
}
