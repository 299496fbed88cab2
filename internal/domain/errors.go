package domain

import "errors"

// ErrConfig marks a scan that cannot start because of its configuration,
// typically an inaccessible root path.
var ErrConfig = errors.New("invalid scan configuration")
