package jmdict

import "testing"

func TestDecodeSearch(t *testing.T) {
	t.Parallel()

	body := []byte(`[
		{
			"variants": [
				{"written": "電車", "pronounced": "でんしゃ", "priorities": ["ichi1", "news1", "nf03"]},
				{"written": "  電車  ", "pronounced": "でんしゃ"}
			],
			"senses": [
				{"glosses": ["train", "electric train"]},
				{"glosses": ["", "railcar"]}
			]
		},
		{
			"variants": [{"written": "車", "pronounced": "くるま", "priorities": ["ichi1"]}],
			"senses": [{"glosses": ["car", "vehicle"]}]
		}
	]`)

	got, err := DecodeSearch(body)
	if err != nil {
		t.Fatalf("DecodeSearch failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("decoded %d entries, want 2", len(got))
	}

	first := got[0]
	if len(first.Variants) != 2 {
		t.Fatalf("first entry has %d variants, want 2", len(first.Variants))
	}
	if first.Variants[0].Written != "電車" || first.Variants[0].Pronounced != "でんしゃ" {
		t.Errorf("unexpected first variant: %+v", first.Variants[0])
	}
	if len(first.Variants[0].Priorities) != 3 {
		t.Errorf("priorities not preserved: %v", first.Variants[0].Priorities)
	}
	if first.Variants[1].Written != "電車" {
		t.Errorf("variant forms should be trimmed, got %q", first.Variants[1].Written)
	}
	if first.PrimaryGloss() != "train" {
		t.Errorf("PrimaryGloss() = %q, want %q", first.PrimaryGloss(), "train")
	}
	if len(first.Glosses) != 3 {
		t.Errorf("blank glosses should be dropped, got %v", first.Glosses)
	}
}

func TestDecodeSearch_EmptyBodies(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"[]", "null"} {
		got, err := DecodeSearch([]byte(body))
		if err != nil {
			t.Fatalf("DecodeSearch(%q) failed: %v", body, err)
		}
		if len(got) != 0 {
			t.Errorf("DecodeSearch(%q) = %v, want empty", body, got)
		}
	}
}

func TestDecodeSearch_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := DecodeSearch([]byte(`{"oops": true}`)); err == nil {
		t.Fatal("DecodeSearch on a non-array body should fail")
	}
}
