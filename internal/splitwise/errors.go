package splitwise

import "errors"

var (
	ErrUserNotFound   = errors.New("splitwise: user not found")
	ErrGroupNotFound  = errors.New("splitwise: group not found")
	ErrNoParticipants = errors.New("splitwise: expense has no participants")
	ErrShareMismatch  = errors.New("splitwise: shares do not reconcile with amount")
)
