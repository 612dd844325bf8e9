// Package reader assembles the paginated bilingual view of a chapter and
// records the reader's position as pages change.
package reader

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/pagination"
	"github.com/mrlokans/quranreader/internal/progress"
	"github.com/mrlokans/quranreader/internal/sections"
	"github.com/mrlokans/quranreader/internal/stats"
)

var (
	ErrInvalidChapter = errors.New("invalid surah number")
	ErrInvalidEdition = errors.New("invalid edition")
	ErrPageOutOfRange = errors.New("page out of range")
)

// TextSource provides chapter text per edition.
type TextSource interface {
	GetSurah(ctx context.Context, number int, edition entities.Edition) (*entities.SurahData, error)
}

// ProgressStore reads and records reading positions.
type ProgressStore interface {
	GetProgress(ctx context.Context, userID string, chapter int, edition entities.Edition) (*entities.ProgressRecord, bool)
	SaveProgress(ctx context.Context, req entities.SaveProgressRequest) progress.TrackedRecord
}

// ProgressHook is called after a page change has been recorded.
type ProgressHook func(userID string)

// VersePair is one verse in the original script with its translation.
type VersePair struct {
	NumberInSurah int    `json:"numberInSurah"`
	Text          string `json:"text"`
	Translation   string `json:"translation,omitempty"`
	Juz           int    `json:"juz"`
	Sajda         bool   `json:"sajda,omitempty"`
}

// View is one page of a chapter.
type View struct {
	Chapter    entities.Chapter `json:"chapter"`
	Edition    entities.Edition `json:"edition"`
	SectionNum int              `json:"section,omitempty"`
	pagination.State
	Window     []int       `json:"pageWindow"`
	RangeLabel string      `json:"rangeLabel"`
	Verses     []VersePair `json:"verses"`
	Percentage int         `json:"percentage"`
	LastRead   *time.Time  `json:"lastRead,omitempty"`
}

// Service builds reader views.
type Service struct {
	text     TextSource
	progress ProgressStore
	hook     ProgressHook
}

func NewService(text TextSource, progress ProgressStore) *Service {
	return &Service{text: text, progress: progress}
}

// SetProgressHook registers fn to run after every recorded page change.
func (s *Service) SetProgressHook(fn ProgressHook) {
	s.hook = fn
}

// Open returns the view of the chapter at page. A page of 0 resumes from the
// user's saved position; any other page is clamped to the chapter.
func (s *Service) Open(ctx context.Context, userID string, chapter int, edition entities.Edition, page int) (*View, error) {
	if !entities.ValidChapter(chapter) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChapter, chapter)
	}
	if !edition.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEdition, edition)
	}

	original, selected, err := s.fetchEditions(ctx, chapter, edition)
	if err != nil {
		return nil, err
	}

	p := pagination.Paginate(len(selected.Ayahs), pagination.VersesPerPage)

	record, hasRecord := s.progress.GetProgress(ctx, userID, chapter, edition)
	if page == 0 && hasRecord {
		page = record.CurrentPage
	}
	page = pagination.Clamp(page, p.TotalPages)

	view := &View{
		Chapter:    selected.Chapter,
		Edition:    edition,
		State:      pagination.NewState(page, p.TotalPages),
		Window:     pagination.Window(page, p.TotalPages),
		RangeLabel: rangeLabel(p.PageOf(page), len(selected.Ayahs)),
		Verses:     pairVerses(original, selected, p.PageOf(page)),
	}
	if section, ok := sections.ForChapter(chapter); ok {
		view.SectionNum = section.Number
	}
	if hasRecord {
		view.Percentage = stats.ProgressPercentage(record.CurrentPage, record.TotalPages)
		lastRead := record.LastRead
		view.LastRead = &lastRead
	}

	return view, nil
}

// ChangePage records that the user moved to page of the chapter.
func (s *Service) ChangePage(ctx context.Context, userID string, chapter int, edition entities.Edition, page int) (progress.TrackedRecord, error) {
	if !entities.ValidChapter(chapter) {
		return progress.TrackedRecord{}, fmt.Errorf("%w: %d", ErrInvalidChapter, chapter)
	}
	if !edition.Valid() {
		return progress.TrackedRecord{}, fmt.Errorf("%w: %q", ErrInvalidEdition, edition)
	}

	surah, err := s.text.GetSurah(ctx, chapter, edition)
	if err != nil {
		return progress.TrackedRecord{}, err
	}
	totalPages := pagination.Paginate(len(surah.Ayahs), pagination.VersesPerPage).TotalPages
	if !entities.ValidPage(page, totalPages) {
		return progress.TrackedRecord{}, fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, page, totalPages)
	}

	record := s.progress.SaveProgress(ctx, entities.SaveProgressRequest{
		UserID:        userID,
		ChapterNumber: chapter,
		EditionID:     edition,
		CurrentPage:   page,
		TotalPages:    totalPages,
	})

	if s.hook != nil {
		s.hook(userID)
	}
	return record, nil
}

// fetchEditions loads the original script and the selected edition
// concurrently. Both are the same chapter when edition is the original.
func (s *Service) fetchEditions(ctx context.Context, chapter int, edition entities.Edition) (*entities.SurahData, *entities.SurahData, error) {
	if edition == entities.OriginalEdition {
		surah, err := s.text.GetSurah(ctx, chapter, edition)
		if err != nil {
			return nil, nil, err
		}
		return surah, surah, nil
	}

	var (
		wg                  sync.WaitGroup
		original, selected  *entities.SurahData
		originalErr, selErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		original, originalErr = s.text.GetSurah(ctx, chapter, entities.OriginalEdition)
	}()
	go func() {
		defer wg.Done()
		selected, selErr = s.text.GetSurah(ctx, chapter, edition)
	}()
	wg.Wait()

	if selErr != nil {
		return nil, nil, selErr
	}
	if originalErr != nil {
		log.Printf("Reader: original text of surah %d unavailable, showing %s only: %v", chapter, edition, originalErr)
		return nil, selected, nil
	}
	return original, selected, nil
}

// pairVerses joins the page's verses of selected with the original text of
// the same verse number. A nil original yields translation-only pairs.
func pairVerses(original, selected *entities.SurahData, b pagination.PageBounds) []VersePair {
	byNumber := make(map[int]string)
	if original != nil && original != selected {
		for _, a := range original.Ayahs {
			byNumber[a.NumberInSurah] = a.Text
		}
	}

	pairs := make([]VersePair, 0, b.End-b.Start)
	for _, a := range selected.Ayahs[b.Start:b.End] {
		pair := VersePair{
			NumberInSurah: a.NumberInSurah,
			Juz:           a.Juz,
			Sajda:         bool(a.Sajda),
		}
		switch {
		case original == selected:
			pair.Text = a.Text
		case original == nil:
			pair.Translation = a.Text
		default:
			pair.Text = byNumber[a.NumberInSurah]
			pair.Translation = a.Text
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

func rangeLabel(b pagination.PageBounds, total int) string {
	if total == 0 {
		return "No verses"
	}
	return fmt.Sprintf("Verses %d-%d of %d", b.Start+1, b.End, total)
}
