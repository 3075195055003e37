// Package filemeta parses the manuscript filename convention used by drafts:
//
//	foreword_v3.docx              front matter, no number
//	chapter_01_intro_v4.docx      numbered chapter
//	appendix_b_forms_v2.pdf       lettered appendix
//
// Anything else falls back to an unnumbered chapter at version v1.
package filemeta

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

var (
	simplePartPattern = regexp.MustCompile(`^(foreword|preface|introduction|conclusion)_v(\d+)$`)
	chapterPattern    = regexp.MustCompile(`^chapter_(\d{2})_([^_]+)_v(\d+)$`)
	appendixPattern   = regexp.MustCompile(`^appendix_([a-z])_([^_]+)_v(\d+)$`)
)

// typeOrder is the sort prefix for each part type. Unlisted types sort at 50.
var typeOrder = map[string]string{
	console.PartForeword:     "00",
	console.PartPreface:      "01",
	console.PartIntroduction: "02",
	console.PartChapter:      "10",
	console.PartAppendix:     "90",
	console.PartConclusion:   "99",
}

const defaultTypePrefix = "50"

// Parse extracts metadata from a filename. Matching is case-insensitive and
// Parse never fails: unrecognised names take the fallback form.
func Parse(filename string) console.FileMetadata {
	name, ext := splitExtension(strings.ToLower(filename))

	if m := simplePartPattern.FindStringSubmatch(name); m != nil {
		return console.FileMetadata{
			PartType:  m[1],
			Title:     capitalize(m[1]),
			Version:   "v" + m[2],
			Extension: ext,
		}
	}

	if m := chapterPattern.FindStringSubmatch(name); m != nil {
		number := m[1]
		return console.FileMetadata{
			PartType:  console.PartChapter,
			Number:    &number,
			Title:     titleCase(strings.ReplaceAll(m[2], "_", " ")),
			Version:   "v" + m[3],
			Extension: ext,
		}
	}

	if m := appendixPattern.FindStringSubmatch(name); m != nil {
		letter := strings.ToUpper(m[1])
		return console.FileMetadata{
			PartType:  console.PartAppendix,
			Number:    &letter,
			Title:     titleCase(strings.ReplaceAll(m[2], "_", " ")),
			Version:   "v" + m[3],
			Extension: ext,
		}
	}

	return console.FileMetadata{
		PartType:  console.PartChapter,
		Title:     titleCase(strings.ReplaceAll(name, "_", " ")),
		Version:   "v1",
		Extension: ext,
	}
}

// DisplayTitle renders the human title, e.g. "Chapter 1: Intro" or "Appendix B: Forms"
func DisplayTitle(meta console.FileMetadata) string {
	if meta.Number == nil || *meta.Number == "" {
		return meta.Title
	}

	switch meta.PartType {
	case console.PartChapter:
		n, err := strconv.Atoi(*meta.Number)
		if err != nil {
			return "Chapter " + *meta.Number + ": " + meta.Title
		}
		return "Chapter " + strconv.Itoa(n) + ": " + meta.Title
	case console.PartAppendix:
		return "Appendix " + *meta.Number + ": " + meta.Title
	default:
		return meta.Title
	}
}

// SortKey returns "{type prefix}_{number padded to 3}". Comparing keys as
// strings orders front matter, chapters by number, appendices by letter, then
// the conclusion.
func SortKey(meta console.FileMetadata) string {
	prefix, ok := typeOrder[meta.PartType]
	if !ok {
		prefix = defaultTypePrefix
	}

	number := "000"
	if meta.Number != nil && *meta.Number != "" {
		number = padLeft(*meta.Number, 3, '0')
	}

	return prefix + "_" + number
}

// VersionFromFilename returns just the version component, e.g. "v3"
func VersionFromFilename(filename string) string {
	return Parse(filename).Version
}

// splitExtension cuts at the final dot. A name without a dot has no extension.
func splitExtension(name string) (base, ext string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func padLeft(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(pad), width-len(s)) + s
}
