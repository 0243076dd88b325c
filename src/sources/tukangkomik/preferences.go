package tukangkomik

import (
	"context"

	"github.com/diogovalentte/tukangkomik/src/notifications"
	"github.com/diogovalentte/tukangkomik/src/preferences"
)

// SetupPreferenceScreen adds the base URL preference to screen.
// Changing it shows a toast asking to restart the app.
func (s *Source) SetupPreferenceScreen(screen *preferences.Screen) {
	baseURLPref := &preferences.EditTextPreference{
		Key:           BaseURLPrefKey,
		Title:         baseURLPrefTitle,
		Summary:       baseURLPrefSummary,
		DefaultValue:  s.DefaultBaseURL(),
		DialogTitle:   baseURLPrefTitle,
		DialogMessage: "Default: " + s.DefaultBaseURL(),
	}
	baseURLPref.SetOnPreferenceChangeListener(func(ctx context.Context, _ string) bool {
		if s.toaster != nil {
			if err := s.toaster.Toast(ctx, s.Intl().Get("restart_app"), notifications.LengthLong); err != nil {
				s.Logger().Error().Err(err).Msg("error while showing the restart toast")
			}
		}
		return true
	})

	screen.AddPreference(baseURLPref)
}
