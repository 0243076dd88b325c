package errordefs

var (
	ErrMangaNotFound         = &CustomError{Message: "manga not found in source"}
	ErrChapterNotFound       = &CustomError{Message: "chapter not found in source"}
	ErrPageNotFound          = &CustomError{Message: "page not found in source"}
	ErrMangaHasNoURL         = &CustomError{Message: "manga has no URL"}
	ErrChapterHasNoURL       = &CustomError{Message: "chapter has no URL"}
	ErrThumbnailNotFound     = &CustomError{Message: "series thumbnail not found in manga page"}
	ErrEmptyDocument         = &CustomError{Message: "source returned an empty document"}
	ErrSourceNotFound        = &CustomError{Message: "source not found"}
	ErrSourceNotConfigurable = &CustomError{Message: "source has no preferences"}

	ErrPreferenceNotFound        = &CustomError{Message: "preference not found"}
	ErrPreferenceChangeRejected  = &CustomError{Message: "preference change rejected"}
	ErrInvalidPreferencesBackend = &CustomError{Message: "invalid preferences backend"}
)

// CustomError is a custom error
type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}
