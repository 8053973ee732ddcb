// Copyright (c) 2026 Ba7besh <team@ba7besh.app>
// All rights reserved. See LICENSE for details.

package store

import "errors"

// ErrBusinessNotFound is returned when an operation requires a business to
// exist and it does not (or is soft-deleted). Handlers map it to a 404.
var ErrBusinessNotFound = errors.New("business not found")
