package kanjicore

import (
	"fmt"
	"strings"
	"testing"
)

func segmentReading(s Segment) string {
	if !s.HasReading() {
		return "<nil>"
	}
	return *s.Reading
}

func TestSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "annotated prefix",
			input: "[電車|でんしゃ]に乗る",
			want: []Segment{
				{Text: "電車", Reading: ptr("でんしゃ")},
				{Text: "に乗る"},
			},
		},
		{
			name:  "plain text only",
			input: "plain text only",
			want:  []Segment{{Text: "plain text only"}},
		},
		{
			name:  "empty annotation keeps base",
			input: "[X|]",
			want:  []Segment{{Text: "X", Reading: ptr("")}},
		},
		{
			name:  "empty base drops token",
			input: "[|Y]",
			want:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Segments(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Segments(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i].Text != tt.want[i].Text || segmentReading(got[i]) != segmentReading(tt.want[i]) {
					t.Errorf("segment %d = {%q %s}, want {%q %s}",
						i, got[i].Text, segmentReading(got[i]), tt.want[i].Text, segmentReading(tt.want[i]))
				}
			}
		})
	}
}

// Concatenating segment texts in order must reproduce the input with the
// bracket syntax stripped.
func TestSegments_TextOrderPreserved(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"[電車|でんしゃ]に乗る",
		"[昨日|きのう]は[雨|あめ]だった",
		"no brackets at all",
		"[単語|たんご]",
	}

	for _, input := range inputs {
		var b strings.Builder
		for _, seg := range Segments(input) {
			b.WriteString(seg.Text)
		}

		stripped := input
		for _, seg := range Segments(input) {
			if seg.HasReading() {
				stripped = strings.Replace(stripped, "["+seg.Text+"|"+*seg.Reading+"]", seg.Text, 1)
			}
		}
		if b.String() != stripped {
			t.Errorf("Segments(%q): concatenated %q, want %q", input, b.String(), stripped)
		}
	}
}

func TestSelectCompounds_Empty(t *testing.T) {
	t.Parallel()

	if got := SelectCompounds(nil, "車", ""); len(got) != 0 {
		t.Errorf("SelectCompounds(nil) = %v, want empty", got)
	}
}

func TestSelectCompounds_CapsAtFivePreservingOrder(t *testing.T) {
	t.Parallel()

	var candidates []WordCandidate
	for i := 0; i < 6; i++ {
		candidates = append(candidates, WordCandidate{
			Variants: []Variant{{
				Written:    fmt.Sprintf("車%d", i),
				Pronounced: "くるま",
				Priorities: []string{"ichi1"},
			}},
			Glosses: []string{fmt.Sprintf("meaning %d", i)},
		})
	}

	got := SelectCompounds(candidates, "車", "")
	if len(got) != 5 {
		t.Fatalf("got %d compounds, want 5", len(got))
	}
	for i, cw := range got {
		want := fmt.Sprintf("車%d", i)
		if cw.Word != want {
			t.Errorf("compound %d = %q, want %q (encounter order)", i, cw.Word, want)
		}
	}
}

func TestSelectCompounds_NeverTheAnchorAlone(t *testing.T) {
	t.Parallel()

	candidates := []WordCandidate{{
		Variants: []Variant{{Written: "車", Pronounced: "くるま", Priorities: []string{"ichi1"}}},
		Glosses:  []string{"car"},
	}}

	if got := SelectCompounds(candidates, "車", ""); len(got) != 0 {
		t.Errorf("anchor-only word must be excluded, got %v", got)
	}
}

func TestSelectCompounds_DedupKeepsFirstEncounter(t *testing.T) {
	t.Parallel()

	candidates := []WordCandidate{
		{
			Variants: []Variant{{Written: "電車", Pronounced: "でんしゃ", Priorities: []string{"ichi1"}}},
			Glosses:  []string{"train"},
		},
		{
			Variants: []Variant{{Written: "電車", Pronounced: "でんくるま", Priorities: []string{"nf48"}}},
			Glosses:  []string{"電 reading variant"},
		},
	}

	got := SelectCompounds(candidates, "車", "")
	if len(got) != 1 {
		t.Fatalf("got %d compounds, want 1", len(got))
	}
	if got[0].Reading != "でんしゃ" || got[0].Meaning != "train" {
		t.Errorf("dedup kept %+v, want the first-encountered variant", got[0])
	}
}

func TestSelectCompounds_AnchorMeaningExcludedCaseInsensitively(t *testing.T) {
	t.Parallel()

	candidates := []WordCandidate{{
		Variants: []Variant{{Written: "車両", Pronounced: "しゃりょう", Priorities: []string{"ichi1"}}},
		Glosses:  []string{"Car"},
	}}

	if got := SelectCompounds(candidates, "車", "car"); len(got) != 0 {
		t.Errorf("gloss matching the anchor meaning must be excluded, got %v", got)
	}
}

func ptr(s string) *string { return &s }
