package audit

import "testing"

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"windows":{"count":4}}`,
			want: `{"windows":{"count":4}}`,
		},
		{
			name: "nested braces",
			in:   `{"a":{"b":{"c":1}},"d":2}`,
			want: `{"a":{"b":{"c":1}},"d":2}`,
		},
		{
			name: "leading prose",
			in:   "Here is the inventory you asked for:\n{\"doors\":{\"count\":2}}",
			want: `{"doors":{"count":2}}`,
		},
		{
			name: "trailing junk after object",
			in:   `{"count":1} and that is all I found.`,
			want: `{"count":1}`,
		},
		{
			name: "json code fence",
			in:   "```json\n{\"count\":3}\n```",
			want: `{"count":3}`,
		},
		{
			name: "uppercase fence with prose",
			in:   "```JSON\nSure:\n{\"count\":3}\n```",
			want: `{"count":3}`,
		},
		{
			name: "braces inside string literals",
			in:   `{"notes":"shaped like } or {","count":1}`,
			want: `{"notes":"shaped like } or {","count":1}`,
		},
		{
			name: "escaped quote inside string",
			in:   `{"notes":"a \"brace\" {","count":2}`,
			want: `{"notes":"a \"brace\" {","count":2}`,
		},
		{
			name: "unbalanced object",
			in:   `{"count": 1`,
			want: "",
		},
		{
			name: "no object at all",
			in:   "I could not detect any structure in this image.",
			want: "",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "array is not an object",
			in:   `[1,2,3]`,
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractJSONObject(tc.in)
			if got != tc.want {
				t.Fatalf("ExtractJSONObject(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
