package slurm

import (
	"encoding/json"
	"testing"
)

func TestValueU32(t *testing.T) {
	tests := []struct {
		name     string
		v        uint32
		mark     Marker
		wantStr  string
		wantJSON string
	}{
		{"present value", 42, NotApplicable, "42", "42"},
		{"sentinel renders not applicable", NO_VAL, NotApplicable, "N/A", `"N/A"`},
		{"sentinel renders not supported", NO_VAL, NotSupported, "n/s", `"n/s"`},
		{"zero is a real value", 0, NotSupported, "0", "0"},
		{"infinite is a real value", INFINITE, NotApplicable, "4294967295", "4294967295"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val := U32(tt.v, tt.mark)
			if got := val.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
			b, err := json.Marshal(val)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(b) != tt.wantJSON {
				t.Errorf("Marshal() = %s, want %s", b, tt.wantJSON)
			}
		})
	}
}

func TestValueU64(t *testing.T) {
	if v := U64(NO_VAL64, NotSupported); v.Avail() {
		t.Error("U64(NO_VAL64) should be unavailable")
	}

	// 32位哨兵对64位字段而言是普通数值.
	got, ok := U64(uint64(NO_VAL), NotSupported).Uint64()
	if !ok || got != uint64(NO_VAL) {
		t.Errorf("U64(uint64(NO_VAL)) = %d, %v; want value preserved", got, ok)
	}
}

func TestValueRoundTrip(t *testing.T) {
	want := uint64(123456789)
	got, ok := U64(want, NotApplicable).Uint64()
	if !ok {
		t.Fatal("value should be available")
	}
	if got != want {
		t.Errorf("Uint64() = %d, want %d", got, want)
	}
}

func TestUnavail(t *testing.T) {
	v := Unavail(NotSupported)
	if v.Avail() {
		t.Error("Unavail() should not be available")
	}
	if got := v.String(); got != "n/s" {
		t.Errorf("String() = %q, want %q", got, "n/s")
	}
}
