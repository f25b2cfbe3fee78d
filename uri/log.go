/*
Copyright 2026 The httpfoundation Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import (
	"os"

	"github.com/rs/zerolog"
)

// logger receives the deprecation-style warning emitted when a rootless path
// is auto-corrected on a URI that has an authority. It defaults to a
// warn-level stderr logger.
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// SetLogger replaces the package logger. Pass zerolog.Nop() to silence the
// auto-correction warning entirely. SetLogger is not safe for concurrent use
// with URI mutation; set it once during program initialization.
func SetLogger(l zerolog.Logger) {
	logger = l
}
