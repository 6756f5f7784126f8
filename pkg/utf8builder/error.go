// Copyright 2026 Benoit Pereira da Silva
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

package utf8builder

import "errors"

// ErrInvalidEncoding is the single error reported by this package.
//
// It signals that the bytes seen so far cannot be part of well-formed UTF-8,
// that a trusted append (PushString, PushRune) was attempted in the middle of
// an incomplete character, or that Finalize was called while a multi-byte
// character was still missing continuation bytes.
//
// Once an ingestion operation has returned it, the Builder's internal state
// is not guaranteed consistent: there is no rollback of the bytes appended
// before the offending one was reached. Callers should treat the error as
// terminal for that Builder and discard it.
var ErrInvalidEncoding = errors.New("utf8builder: incorrect UTF-8 data")
