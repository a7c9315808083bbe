package assess

import "testing"

const cleanArray = `[{"question": "Q?", "options": ["a", "b", "c", "d"], "correct": "A", "explanation": "because"}]`

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "already clean",
			in:   cleanArray,
			want: cleanArray,
		},
		{
			name: "fenced json block",
			in:   "```json\n" + cleanArray + "\n```",
			want: cleanArray,
		},
		{
			name: "fenced block without language tag",
			in:   "```\n" + cleanArray + "\n```",
			want: cleanArray,
		},
		{
			name: "uppercase fence tag",
			in:   "```JSON\n" + cleanArray + "\n```",
			want: cleanArray,
		},
		{
			name: "chatter around bare array",
			in:   "Sure! Here is your quiz:\n" + cleanArray + "\nLet me know if you need more.",
			want: cleanArray,
		},
		{
			name: "no JSON at all",
			in:   "I could not generate a quiz.",
			want: "I could not generate a quiz.",
		},
		{
			name: "surrounding whitespace",
			in:   "\n\n  " + cleanArray + "  \n",
			want: cleanArray,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanJSON(tt.in); got != tt.want {
				t.Errorf("CleanJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCleanJSONIdempotent(t *testing.T) {
	inputs := []string{
		cleanArray,
		"```json\n" + cleanArray + "\n```",
		"prefix " + cleanArray + " suffix",
	}

	for _, in := range inputs {
		once := CleanJSON(in)
		twice := CleanJSON(once)
		if once != twice {
			t.Errorf("CleanJSON not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	}
}
