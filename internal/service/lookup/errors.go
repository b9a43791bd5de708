package lookup

import "errors"

// ErrKanjiNotFound indicates the character was not found by the kanji
// provider.
var ErrKanjiNotFound = errors.New("kanji not found in external provider")
