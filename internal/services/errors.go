package services

import "errors"

// ErrForbidden is returned whenever the access policy denies an operation.
// Services check it before touching the store so a denied call never leaves
// a partial write behind.
var ErrForbidden = errors.New("access denied")
