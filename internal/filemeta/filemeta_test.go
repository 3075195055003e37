package filemeta

import (
	"sort"
	"testing"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

func strPtr(s string) *string { return &s }

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     console.FileMetadata
	}{
		{
			name:     "numbered chapter",
			filename: "chapter_01_intro_v4.docx",
			want: console.FileMetadata{
				PartType: "chapter", Number: strPtr("01"), Title: "Intro", Version: "v4", Extension: "docx",
			},
		},
		{
			name:     "appendix letter is uppercased",
			filename: "appendix_b_forms_v2.pdf",
			want: console.FileMetadata{
				PartType: "appendix", Number: strPtr("B"), Title: "Forms", Version: "v2", Extension: "pdf",
			},
		},
		{
			name:     "front matter has no number",
			filename: "foreword_v3.docx",
			want: console.FileMetadata{
				PartType: "foreword", Title: "Foreword", Version: "v3", Extension: "docx",
			},
		},
		{
			name:     "matching ignores case",
			filename: "Conclusion_V12.DOCX",
			want: console.FileMetadata{
				PartType: "conclusion", Title: "Conclusion", Version: "v12", Extension: "docx",
			},
		},
		{
			name:     "fallback for unconventional name",
			filename: "random_name.pdf",
			want: console.FileMetadata{
				PartType: "chapter", Title: "Random Name", Version: "v1", Extension: "pdf",
			},
		},
		{
			name:     "single digit chapter number falls back",
			filename: "chapter_1_intro_v1.docx",
			want: console.FileMetadata{
				PartType: "chapter", Title: "Chapter 1 Intro V1", Version: "v1", Extension: "docx",
			},
		},
		{
			name:     "multi word chapter title falls back",
			filename: "chapter_02_two_words_v1.docx",
			want: console.FileMetadata{
				PartType: "chapter", Title: "Chapter 02 Two Words V1", Version: "v1", Extension: "docx",
			},
		},
		{
			name:     "extension is taken after the final dot",
			filename: "archive.tar.gz",
			want: console.FileMetadata{
				PartType: "chapter", Title: "Archive.tar", Version: "v1", Extension: "gz",
			},
		},
		{
			name:     "no extension",
			filename: "README",
			want: console.FileMetadata{
				PartType: "chapter", Title: "Readme", Version: "v1", Extension: "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.filename)
			if got.PartType != tt.want.PartType {
				t.Errorf("PartType = %q, want %q", got.PartType, tt.want.PartType)
			}
			if !equalNumber(got.Number, tt.want.Number) {
				t.Errorf("Number = %v, want %v", deref(got.Number), deref(tt.want.Number))
			}
			if got.Title != tt.want.Title {
				t.Errorf("Title = %q, want %q", got.Title, tt.want.Title)
			}
			if got.Version != tt.want.Version {
				t.Errorf("Version = %q, want %q", got.Version, tt.want.Version)
			}
			if got.Extension != tt.want.Extension {
				t.Errorf("Extension = %q, want %q", got.Extension, tt.want.Extension)
			}
		})
	}
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"chapter_01_intro_v4.docx", "Chapter 1: Intro"},
		{"chapter_12_evidence_v1.docx", "Chapter 12: Evidence"},
		{"appendix_a_forms_v2.pdf", "Appendix A: Forms"},
		{"preface_v1.docx", "Preface"},
		{"random_name.pdf", "Random Name"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := DisplayTitle(Parse(tt.filename)); got != tt.want {
				t.Errorf("DisplayTitle(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestSortKey(t *testing.T) {
	tests := []struct {
		name string
		meta console.FileMetadata
		want string
	}{
		{"foreword", Parse("foreword_v1.docx"), "00_000"},
		{"preface", Parse("preface_v1.docx"), "01_000"},
		{"introduction", Parse("introduction_v1.docx"), "02_000"},
		{"chapter", Parse("chapter_07_x_v1.docx"), "10_007"},
		{"appendix", Parse("appendix_c_y_v1.docx"), "90_00C"},
		{"conclusion", Parse("conclusion_v1.docx"), "99_000"},
		{"unnumbered fallback", Parse("notes.docx"), "10_000"},
		{"unknown part type", console.FileMetadata{PartType: "glossary"}, "50_000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SortKey(tt.meta); got != tt.want {
				t.Errorf("SortKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortKey_Ordering(t *testing.T) {
	ch1 := SortKey(Parse("chapter_01_a_v1.docx"))
	ch2 := SortKey(Parse("chapter_02_a_v1.docx"))
	if !(ch2 > ch1) {
		t.Errorf("chapter 02 key %q should sort after chapter 01 key %q", ch2, ch1)
	}

	lastChapter := SortKey(Parse("chapter_99_z_v1.docx"))
	firstAppendix := SortKey(Parse("appendix_a_z_v1.docx"))
	if !(firstAppendix > lastChapter) {
		t.Errorf("appendix key %q should sort after chapter key %q", firstAppendix, lastChapter)
	}

	filenames := []string{
		"conclusion_v1.docx",
		"appendix_b_y_v1.docx",
		"chapter_10_x_v1.docx",
		"foreword_v1.docx",
		"appendix_a_y_v1.docx",
		"chapter_02_x_v1.docx",
		"introduction_v1.docx",
		"preface_v1.docx",
	}
	want := []string{
		"foreword_v1.docx",
		"preface_v1.docx",
		"introduction_v1.docx",
		"chapter_02_x_v1.docx",
		"chapter_10_x_v1.docx",
		"appendix_a_y_v1.docx",
		"appendix_b_y_v1.docx",
		"conclusion_v1.docx",
	}

	sort.Slice(filenames, func(i, j int) bool {
		return SortKey(Parse(filenames[i])) < SortKey(Parse(filenames[j]))
	})
	for i := range want {
		if filenames[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q (full order %v)", i, filenames[i], want[i], filenames)
		}
	}
}

func TestVersionFromFilename(t *testing.T) {
	if got := VersionFromFilename("chapter_03_sentencing_v2.docx"); got != "v2" {
		t.Errorf("VersionFromFilename() = %q, want v2", got)
	}
	if got := VersionFromFilename("whatever.docx"); got != "v1" {
		t.Errorf("VersionFromFilename() fallback = %q, want v1", got)
	}
}

func equalNumber(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
