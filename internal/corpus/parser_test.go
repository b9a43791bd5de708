package corpus

import (
	"context"
	"strings"
	"testing"
)

const sampleTSV = "電車に乗る\t[電車|でんしゃ]に[乗|の]る\tI take the train.\n" +
	"車を買った\t[車|くるま]を[買|か]った\tI bought a car.\n" +
	"ひらがなだけ\t\tOnly hiragana.\n" +
	"broken line without tabs\n" +
	"火が消えた\t\tThe fire went out.\n"

func TestParse_GroupsByKanji(t *testing.T) {
	t.Parallel()

	result, err := Parse(strings.NewReader(sampleTSV), 0)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if result.Stats.TotalLines != 5 {
		t.Errorf("TotalLines = %d, want 5", result.Stats.TotalLines)
	}
	if result.Stats.SkippedShort != 1 {
		t.Errorf("SkippedShort = %d, want 1 (the tab-less line)", result.Stats.SkippedShort)
	}

	car := result.Examples["車"]
	if len(car) != 2 {
		t.Fatalf("examples for 車: %d, want 2", len(car))
	}
	// Both sentences tie on length; input order must hold.
	if car[0].Sentence != "電車に乗る" || car[1].Sentence != "車を買った" {
		t.Errorf("unexpected order for 車: %q, %q", car[0].Sentence, car[1].Sentence)
	}
	if car[0].Transcription != "[電車|でんしゃ]に[乗|の]る" {
		t.Errorf("transcription not preserved: %q", car[0].Transcription)
	}

	fire := result.Examples["火"]
	if len(fire) != 1 || fire[0].Transcription != "" {
		t.Errorf("examples for 火: %+v, want one with empty transcription", fire)
	}

	if _, ok := result.Examples["乗"]; !ok {
		t.Error("every kanji in a sentence should be indexed, 乗 missing")
	}
}

func TestParse_CapsPerKanji(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteString("車")
		b.WriteString(strings.Repeat("あ", i))
		b.WriteString("\t\tx\n")
	}

	result, err := Parse(strings.NewReader(b.String()), 3)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	car := result.Examples["車"]
	if len(car) != 3 {
		t.Fatalf("examples for 車: %d, want capped at 3", len(car))
	}
	// Shortest sentences first.
	for i := 1; i < len(car); i++ {
		if len(car[i-1].Sentence) > len(car[i].Sentence) {
			t.Errorf("examples not sorted by length: %q before %q", car[i-1].Sentence, car[i].Sentence)
		}
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	result, err := Parse(strings.NewReader(""), 5)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(result.Examples) != 0 {
		t.Errorf("Examples = %v, want empty", result.Examples)
	}
}

func TestProvider_FetchExamples(t *testing.T) {
	t.Parallel()

	p, err := NewProvider(strings.NewReader(sampleTSV), 5)
	if err != nil {
		t.Fatalf("NewProvider failed: %v", err)
	}

	got, err := p.FetchExamples(context.Background(), "火")
	if err != nil {
		t.Fatalf("FetchExamples failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("FetchExamples(火) returned %d examples, want 1", len(got))
	}

	none, err := p.FetchExamples(context.Background(), "鳥")
	if err != nil {
		t.Fatalf("FetchExamples failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("FetchExamples(鳥) = %v, want empty", none)
	}
}
