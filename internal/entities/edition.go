package entities

// Edition identifies a text edition: the original script or a translation.
type Edition string

const (
	EditionUthmani       Edition = "quran-uthmani"
	EditionUrduJalandhry Edition = "ur.jalandhry"
	EditionEnglishAsad   Edition = "en.asad"
)

// OriginalEdition is the edition shown alongside every translation.
const OriginalEdition = EditionUthmani

var editionLabels = map[Edition]string{
	EditionUthmani:       "Arabic",
	EditionUrduJalandhry: "Urdu",
	EditionEnglishAsad:   "English",
}

// Editions returns the supported editions in display order.
func Editions() []Edition {
	return []Edition{EditionUthmani, EditionUrduJalandhry, EditionEnglishAsad}
}

func (e Edition) Valid() bool {
	_, ok := editionLabels[e]
	return ok
}

// Label returns the language name shown for the edition.
func (e Edition) Label() string {
	if label, ok := editionLabels[e]; ok {
		return label
	}
	return string(e)
}

func (e Edition) String() string {
	return string(e)
}
