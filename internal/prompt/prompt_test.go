package prompt

import "testing"

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		system  string
		content string
		extra   string
		want    string
	}{
		{
			name:    "full inputs",
			system:  "Summarize the lesson.",
			content: "hello world",
			extra:   "Answer in Vietnamese.",
			want:    "Summarize the lesson.\n\nContent:\nhello world\n\nAnswer in Vietnamese.",
		},
		{
			name:    "empty extra adds no trailing separator",
			system:  "Summarize the lesson.",
			content: "hello world",
			want:    "Summarize the lesson.\n\nContent:\nhello world",
		},
		{
			name:   "empty content is trimmed after the header",
			system: "Summarize the lesson.",
			want:   "Summarize the lesson.\n\nContent:",
		},
		{
			name:    "surrounding whitespace trimmed as a whole",
			system:  "  Summarize the lesson.",
			content: "hello world\n\n",
			want:    "Summarize the lesson.\n\nContent:\nhello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.system, tt.content, tt.extra)
			if got != tt.want {
				t.Errorf("Build() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	first := Build("a", "b", "c")
	for i := 0; i < 5; i++ {
		if got := Build("a", "b", "c"); got != first {
			t.Fatalf("Build() = %q, want %q", got, first)
		}
	}
}
