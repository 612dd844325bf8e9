package entities

import "strings"

// Validation messages reported by ValidateProgressRequest.
const (
	ErrMsgInvalidUserID     = "invalid user ID"
	ErrMsgInvalidChapter    = "invalid surah number"
	ErrMsgInvalidEdition    = "invalid language"
	ErrMsgInvalidPage       = "invalid page number"
	ErrMsgInvalidTotalPages = "total pages must be greater than 0"
)

// ValidChapter reports whether n names an existing chapter.
func ValidChapter(n int) bool {
	return n >= 1 && n <= TotalChapters
}

// ValidPage reports whether page lies within [1, totalPages].
func ValidPage(page, totalPages int) bool {
	return page >= 1 && page <= totalPages
}

// ValidateProgressRequest returns every rule the request violates.
// An empty result means the request is acceptable.
func ValidateProgressRequest(req SaveProgressRequest) []string {
	var errs []string

	if strings.TrimSpace(req.UserID) == "" {
		errs = append(errs, ErrMsgInvalidUserID)
	}
	if !ValidChapter(req.ChapterNumber) {
		errs = append(errs, ErrMsgInvalidChapter)
	}
	if !req.EditionID.Valid() {
		errs = append(errs, ErrMsgInvalidEdition)
	}
	if req.TotalPages <= 0 {
		errs = append(errs, ErrMsgInvalidTotalPages)
	} else if !ValidPage(req.CurrentPage, req.TotalPages) {
		errs = append(errs, ErrMsgInvalidPage)
	}

	return errs
}
