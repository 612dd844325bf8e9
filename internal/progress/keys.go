package progress

import (
	"strconv"
	"strings"

	"github.com/mrlokans/quranreader/internal/entities"
)

// KeyPrefix starts every local progress key.
const KeyPrefix = "quran_progress_"

// MakeKey returns the local storage key for a (user, chapter, edition) triple:
// quran_progress_{userId}_{chapterNumber}_{editionId}.
func MakeKey(userID string, chapter int, edition entities.Edition) string {
	return KeyPrefix + userID + "_" + strconv.Itoa(chapter) + "_" + string(edition)
}

// UserPrefix is the prefix shared by all of a user's keys. Other users whose
// ID starts with userID+"_" share it too, so scan results must be checked
// for ownership.
func UserPrefix(userID string) string {
	return KeyPrefix + userID + "_"
}

// ParseKey splits a progress key back into its triple. Parsing runs from the
// right and assumes the edition is non-empty and free of '_'; user IDs may
// contain '_'. Keys outside that shape fail here, and LocalStore resolves
// them from the stored record instead.
func ParseKey(key string) (userID string, chapter int, edition entities.Edition, ok bool) {
	rest, found := strings.CutPrefix(key, KeyPrefix)
	if !found {
		return "", 0, "", false
	}

	i := strings.LastIndexByte(rest, '_')
	if i <= 0 || i == len(rest)-1 {
		return "", 0, "", false
	}
	edition = entities.Edition(rest[i+1:])
	rest = rest[:i]

	j := strings.LastIndexByte(rest, '_')
	if j <= 0 {
		return "", 0, "", false
	}
	chapter, err := strconv.Atoi(rest[j+1:])
	if err != nil || chapter < 1 {
		return "", 0, "", false
	}

	return rest[:j], chapter, edition, true
}
