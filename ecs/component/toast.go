package component

import "time"

// Toast is a short on-screen message.
type Toast struct {
	Text      string
	Remaining time.Duration
}

var ToastComponent = NewComponent[Toast]()
