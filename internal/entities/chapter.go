package entities

import (
	"bytes"
	"encoding/json"
)

// TotalChapters is the number of chapters (surahs) in the text.
const TotalChapters = 114

// TotalVerses is the number of verses (ayahs) in the text.
const TotalVerses = 6236

type RevelationType string

const (
	RevelationMeccan  RevelationType = "Meccan"
	RevelationMedinan RevelationType = "Medinan"
)

// Chapter is the metadata of one surah as listed by the text provider.
type Chapter struct {
	Number                 int            `json:"number"`
	Name                   string         `json:"name"`
	EnglishName            string         `json:"englishName"`
	EnglishNameTranslation string         `json:"englishNameTranslation"`
	NumberOfAyahs          int            `json:"numberOfAyahs"`
	RevelationType         RevelationType `json:"revelationType"`
}

// Ayah is a single verse of a chapter in one edition.
type Ayah struct {
	NumberInSurah int    `json:"numberInSurah"`
	Number        int    `json:"number"`
	Text          string `json:"text"`
	Juz           int    `json:"juz"`
	Manzil        int    `json:"manzil"`
	Ruku          int    `json:"ruku"`
	HizbQuarter   int    `json:"hizbQuarter"`
	Sajda         Sajda  `json:"sajda"`
}

// Sajda marks a prostration verse. The provider sends either false or an
// object describing the prostration; any object counts as true.
type Sajda bool

func (s *Sajda) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = false
	case len(data) > 0 && data[0] == '{':
		*s = true
	default:
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*s = Sajda(b)
	}
	return nil
}

// EditionInfo describes the edition a chapter was served in.
type EditionInfo struct {
	Identifier  string `json:"identifier"`
	Language    string `json:"language"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Format      string `json:"format"`
	Type        string `json:"type"`
	Direction   string `json:"direction"`
}

// SurahData is a chapter with its verses in a single edition.
type SurahData struct {
	Chapter
	Ayahs   []Ayah      `json:"ayahs"`
	Edition EditionInfo `json:"edition"`
}
