package util

import (
	"strings"
	"testing"
)

func TestParseColorValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ColorValue
		wantErr bool
	}{
		{name: "random sentinel", input: "RANDOM", want: ColorValue{Random: true}},
		{name: "random lowercase", input: "random", want: ColorValue{Random: true}},
		{name: "empty means random", input: "", want: ColorValue{Random: true}},
		{name: "integer", input: "1", want: ColorValue{Value: 1}},
		{name: "fraction", input: "0.5", want: ColorValue{Value: 0.5}},
		{name: "hue degrees", input: "359.99", want: ColorValue{Value: 359.99}},
		{name: "negative", input: "-0.5", want: ColorValue{Value: -0.5}},
		{name: "not a number", input: "bright", wantErr: true},
		{name: "trailing garbage", input: "1.0x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColorValue(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got none")
				}
				if !strings.Contains(err.Error(), "expected a number or RANDOM") {
					t.Errorf("error = %q, want mention of the accepted forms", err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColorValue(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value ColorValue
		want  string
	}{
		{name: "random", value: ColorValue{Random: true}, want: "RANDOM"},
		{name: "whole number drops the decimals", value: ColorValue{Value: 1}, want: "1"},
		{name: "fraction", value: ColorValue{Value: 0.5}, want: "0.5"},
		{name: "hue degrees", value: ColorValue{Value: 359.99}, want: "359.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorValue_RoundTrip(t *testing.T) {
	inputs := []string{"RANDOM", "0", "1", "0.5", "359.99", "120.25"}

	for _, input := range inputs {
		parsed, err := ParseColorValue(input)
		if err != nil {
			t.Fatalf("ParseColorValue(%q) failed: %v", input, err)
		}

		again, err := ParseColorValue(parsed.String())
		if err != nil {
			t.Fatalf("re-parsing %q failed: %v", parsed.String(), err)
		}
		if again != parsed {
			t.Errorf("round-trip of %q = %+v, want %+v", input, again, parsed)
		}
	}

	t.Logf("✓ parsed values survive a print/parse round-trip")
}

func TestColorValue_Ptr(t *testing.T) {
	if ptr := (ColorValue{Random: true}).Ptr(); ptr != nil {
		t.Errorf("Ptr() for random = %v, want nil", *ptr)
	}

	fixed := ColorValue{Value: 0.75}
	ptr := fixed.Ptr()
	if ptr == nil {
		t.Fatal("Ptr() for fixed value = nil")
	}
	if *ptr != 0.75 {
		t.Errorf("*Ptr() = %v, want 0.75", *ptr)
	}

	// The pointer must not alias the receiver.
	*ptr = 99
	if fixed.Value != 0.75 {
		t.Error("mutating the pointer changed the original value")
	}
}

func TestFormatFloat32(t *testing.T) {
	tests := []struct {
		value float32
		want  string
	}{
		{1, "1"},
		{0.5, "0.5"},
		{0.001953125, "0.001953125"},
		{359.99, "359.99"},
	}

	for _, tt := range tests {
		if got := FormatFloat32(tt.value); got != tt.want {
			t.Errorf("FormatFloat32(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
