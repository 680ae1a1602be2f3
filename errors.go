package client

import "errors"

// ErrActionNotImplemented is returned when a lifecycle action is requested
// that is not in the allow-list for the resource type. The request is
// rejected before any network call is made.
var ErrActionNotImplemented = errors.New("action not implemented")

// ErrCommentRequired is returned when a lifecycle action that requires a
// comment is invoked without one. The request is rejected before any network
// call is made.
var ErrCommentRequired = errors.New("action requires a comment")
