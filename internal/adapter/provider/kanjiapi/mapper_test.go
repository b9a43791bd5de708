package kanjiapi

import "testing"

func TestDecodeKanji(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"kanji": "車",
		"meanings": ["car", "vehicle", ""],
		"kun_readings": ["くるま"],
		"on_readings": ["シャ"]
	}`)

	got, err := DecodeKanji(body)
	if err != nil {
		t.Fatalf("DecodeKanji failed: %v", err)
	}
	if got == nil {
		t.Fatal("DecodeKanji returned nil for a valid body")
	}
	if got.Literal != "車" {
		t.Errorf("Literal = %q, want 車", got.Literal)
	}
	if got.PrimaryMeaning() != "car" {
		t.Errorf("PrimaryMeaning() = %q, want %q", got.PrimaryMeaning(), "car")
	}
	if len(got.Meanings) != 2 {
		t.Errorf("blank meanings should be dropped, got %v", got.Meanings)
	}
	if len(got.KunReadings) != 1 || len(got.OnReadings) != 1 {
		t.Errorf("readings not preserved: kun=%v on=%v", got.KunReadings, got.OnReadings)
	}
}

func TestDecodeKanji_NotFound(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"", "null", "  null \n", `{"kanji": ""}`} {
		got, err := DecodeKanji([]byte(body))
		if err != nil {
			t.Fatalf("DecodeKanji(%q) failed: %v", body, err)
		}
		if got != nil {
			t.Errorf("DecodeKanji(%q) = %+v, want nil", body, got)
		}
	}
}

func TestDecodeKanji_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := DecodeKanji([]byte(`[1, 2]`)); err == nil {
		t.Fatal("DecodeKanji on a non-object body should fail")
	}
}

func TestPrimaryMeaning_NilReceiver(t *testing.T) {
	t.Parallel()

	got, err := DecodeKanji([]byte("null"))
	if err != nil {
		t.Fatalf("DecodeKanji failed: %v", err)
	}
	if got.PrimaryMeaning() != "" {
		t.Error("PrimaryMeaning on a nil result should be empty")
	}
}
