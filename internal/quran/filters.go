package quran

import "github.com/mrlokans/quranreader/internal/entities"

// FindChapter looks a chapter up by number.
func FindChapter(chapters []entities.Chapter, number int) (entities.Chapter, bool) {
	for _, c := range chapters {
		if c.Number == number {
			return c, true
		}
	}
	return entities.Chapter{}, false
}

// ChapterRange returns the chapters numbered start through end.
func ChapterRange(chapters []entities.Chapter, start, end int) []entities.Chapter {
	var out []entities.Chapter
	for _, c := range chapters {
		if c.Number >= start && c.Number <= end {
			out = append(out, c)
		}
	}
	return out
}

// FilterByRevelation keeps the chapters revealed in Mecca or Medina.
func FilterByRevelation(chapters []entities.Chapter, revelation entities.RevelationType) []entities.Chapter {
	var out []entities.Chapter
	for _, c := range chapters {
		if c.RevelationType == revelation {
			out = append(out, c)
		}
	}
	return out
}
