package pricing

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshalNumberAndString(t *testing.T) {
	var fromNumber, fromString Amount

	if err := json.Unmarshal([]byte(`150000`), &fromNumber); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`"150000"`), &fromString); err != nil {
		t.Fatal(err)
	}

	a, okA := fromNumber.Float64()
	b, okB := fromString.Float64()
	if !okA || !okB {
		t.Fatal("both encodings should decode as present")
	}
	if a != b {
		t.Errorf("number %v != string %v; both encodings must price identically", a, b)
	}
}

func TestAmountUnmarshalAbsent(t *testing.T) {
	for _, raw := range []string{`null`, `""`, `"abc"`, `"NaN"`} {
		var a Amount
		if err := json.Unmarshal([]byte(raw), &a); err != nil {
			t.Fatalf("unmarshal %s: %v", raw, err)
		}
		if _, ok := a.Float64(); ok {
			t.Errorf("%s should decode as absent", raw)
		}
	}
}

func TestAmountMarshal(t *testing.T) {
	data, err := json.Marshal(NewAmount(250000))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "250000" {
		t.Errorf("marshal = %s, want 250000", data)
	}

	data, _ = json.Marshal(Amount{})
	if string(data) != "null" {
		t.Errorf("absent amount marshals to %s, want null", data)
	}
}

func TestUnitPriceFallbackOrder(t *testing.T) {
	cases := []struct {
		name      string
		priceTrip Amount
		basePrice float64
		want      float64
	}{
		{"price record wins", NewAmount(250000), 150000, 250000},
		{"zero price record still wins", NewAmount(0), 150000, 0},
		{"falls back to base price", Amount{}, 150000, 150000},
		{"no price at all", Amount{}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := UnitPrice(tc.priceTrip, tc.basePrice); got != tc.want {
				t.Errorf("UnitPrice = %v, want %v", got, tc.want)
			}
		})
	}
}

// The wire encoding of priceTrip must not change the computed unit
// price: "150000" and 150000 yield the same result.
func TestUnitPriceEncodingAgnostic(t *testing.T) {
	var fromString, fromNumber Amount
	json.Unmarshal([]byte(`"180000"`), &fromString)
	json.Unmarshal([]byte(`180000`), &fromNumber)

	if UnitPrice(fromString, 0) != UnitPrice(fromNumber, 0) {
		t.Error("unit price differs between string and numeric encodings")
	}
}

func TestTotal(t *testing.T) {
	if got := Total(150000, 3); got != 450000 {
		t.Errorf("Total = %v, want 450000", got)
	}
	if got := Total(150000, 0); got != 0 {
		t.Errorf("Total of zero seats = %v, want 0", got)
	}
	if got := Total(150000, -1); got != 0 {
		t.Errorf("Total of negative count = %v, want 0", got)
	}
}

func TestFormatVND(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0đ"},
		{500, "500đ"},
		{1500, "1.500đ"},
		{150000, "150.000đ"},
		{1250000, "1.250.000đ"},
		{-45000, "-45.000đ"},
		{149999.6, "150.000đ"},
	}
	for _, tc := range cases {
		if got := FormatVND(tc.amount); got != tc.want {
			t.Errorf("FormatVND(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
