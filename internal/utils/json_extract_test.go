package utils

import "testing"

type criteriaStub struct {
	District string  `json:"district"`
	PriceMax float64 `json:"price_max"`
}

func TestDecodeLooseJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    criteriaStub
	}{
		{
			name:  "pure JSON",
			input: `{"district":"النرجس","price_max":800000}`,
			want:  criteriaStub{District: "النرجس", PriceMax: 800000},
		},
		{
			name:  "json code fence",
			input: "```json\n{\"district\":\"الملقا\",\"price_max\":500000}\n```",
			want:  criteriaStub{District: "الملقا", PriceMax: 500000},
		},
		{
			name:  "bare code fence",
			input: "```\n{\"district\":\"العليا\"}\n```",
			want:  criteriaStub{District: "العليا"},
		},
		{
			name:  "embedded in chat text",
			input: `Sure, here are the criteria: {"district":"حطين","price_max":900000}. Let me know!`,
			want:  criteriaStub{District: "حطين", PriceMax: 900000},
		},
		{
			name:  "braces inside string values",
			input: `{"district":"حي {الورود}","price_max":1}`,
			want:  criteriaStub{District: "حي {الورود}", PriceMax: 1},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "no JSON at all",
			input:   "لم أفهم طلبك",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got criteriaStub
			err := DecodeLooseJSON(tt.input, &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeLooseJSON error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("DecodeLooseJSON = %+v, want %+v", got, tt.want)
			}
		})
	}
}
