// Package sections holds the fixed division of the text into 30 sections
// (parahs, also called juz).
package sections

// Count is the number of sections.
const Count = 30

// Section is one of the 30 sections. It spans from StartAyah of StartSurah
// to EndAyah of EndSurah.
type Section struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	StartSurah  int    `json:"startSurah"`
	EndSurah    int    `json:"endSurah"`
	StartAyah   int    `json:"startAyah"`
	EndAyah     int    `json:"endAyah"`
	TotalAyahs  int    `json:"totalAyahs"`
	Description string `json:"description"`
}

// All returns every section in order.
func All() []Section {
	out := make([]Section, len(table))
	copy(out, table)
	return out
}

// ByNumber returns the section with the given number.
func ByNumber(n int) (Section, bool) {
	if n < 1 || n > len(table) {
		return Section{}, false
	}
	return table[n-1], true
}

// ChaptersIn lists the chapters the section touches, including chapters it
// only starts or ends in.
func ChaptersIn(n int) []int {
	s, ok := ByNumber(n)
	if !ok {
		return nil
	}
	chapters := make([]int, 0, s.EndSurah-s.StartSurah+1)
	for c := s.StartSurah; c <= s.EndSurah; c++ {
		chapters = append(chapters, c)
	}
	return chapters
}

// ForChapter returns the first section whose chapter span includes chapter.
// Chapters split across sections resolve to the earlier one.
func ForChapter(chapter int) (Section, bool) {
	for _, s := range table {
		if chapter >= s.StartSurah && chapter <= s.EndSurah {
			return s, true
		}
	}
	return Section{}, false
}

// Range returns sections numbered start through end.
func Range(start, end int) []Section {
	var out []Section
	for _, s := range table {
		if s.Number >= start && s.Number <= end {
			out = append(out, s)
		}
	}
	return out
}
