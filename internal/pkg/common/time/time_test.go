package time

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestMarshalZeroTime(t *testing.T) {
	b, err := json.Marshal(Time{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `""` {
		t.Errorf("Marshal(zero) = %s, want \"\"", b)
	}
}

func TestFromUnix(t *testing.T) {
	if !FromUnix(0).IsZero() {
		t.Error("FromUnix(0) should be zero")
	}
	if !FromUnix(-5).IsZero() {
		t.Error("FromUnix(negative) should be zero")
	}

	ts := FromUnix(1700000000)
	if ts.IsZero() {
		t.Fatal("FromUnix(1700000000) should not be zero")
	}
	if got := time.Time(ts).Unix(); got != 1700000000 {
		t.Errorf("Unix() = %d, want 1700000000", got)
	}

	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.HasPrefix(string(b), `"`) || string(b) == `""` {
		t.Errorf("Marshal(non-zero) = %s, want RFC3339 string", b)
	}
}
