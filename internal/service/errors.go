package service

import "errors"

// ErrEmptyMessage rejects a chat request without a message body.
var ErrEmptyMessage = errors.New("empty chat message")
