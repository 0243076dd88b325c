package notifications

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Duration is how long a toast is shown
type Duration int

const (
	LengthShort Duration = iota
	LengthLong
)

func (d Duration) String() string {
	if d == LengthLong {
		return "long"
	}

	return "short"
}

// Toaster shows a short message to the user
type Toaster interface {
	Toast(ctx context.Context, message string, duration Duration) error
}

// LogToaster shows the toasts as log lines
type LogToaster struct {
	Log *zerolog.Logger
}

// Toast implements Toaster
func (t *LogToaster) Toast(_ context.Context, message string, duration Duration) error {
	t.Log.Info().Str("duration", duration.String()).Msg(message)
	return nil
}

// MultiToaster shows the toasts using every toaster
type MultiToaster []Toaster

// Toast implements Toaster. Every toaster is called even if one of them fails.
func (m MultiToaster) Toast(ctx context.Context, message string, duration Duration) error {
	var errs []error
	for _, toaster := range m {
		if err := toaster.Toast(ctx, message, duration); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
