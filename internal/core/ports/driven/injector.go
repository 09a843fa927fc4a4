package driven

import "context"

// Injector hands a finalized payload to the external text-injection
// collaborator. The core never performs the injection itself.
type Injector interface {
	// Inject delivers the payload. itemCount is the number of merged
	// snippets, passed through for user feedback.
	Inject(ctx context.Context, payload string, itemCount int) error
}

// Notifier reports launch outcomes to the user outside the TUI,
// typically via desktop notifications.
type Notifier interface {
	// Notify shows a short message. Failures are advisory; callers
	// may ignore the error.
	Notify(ctx context.Context, title, message string) error
}
