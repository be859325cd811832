package ytdlp

import (
	"context"
	"testing"
)

func TestParseLanguageList(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []Language
	}{
		{
			name: "two languages in output order",
			output: "[youtube] Extracting URL\n" +
				"Available subtitles for dQw4w9WgXcQ:\n" +
				"en       vtt, srt  English\n" +
				"fr       vtt, srt  French\n",
			want: []Language{
				{Code: "en", Name: "English"},
				{Code: "fr", Name: "French"},
			},
		},
		{
			name: "lines before marker are ignored",
			output: "en       vtt, srt  Not counted\n" +
				"Available subtitles for dQw4w9WgXcQ:\n" +
				"de       vtt, srt  German\n",
			want: []Language{
				{Code: "de", Name: "German"},
			},
		},
		{
			name:   "no marker line",
			output: "en       vtt, srt  English\nfr       vtt, srt  French\n",
			want:   nil,
		},
		{
			name:   "marker with nothing after it",
			output: "Available subtitles for dQw4w9WgXcQ:\n",
			want:   nil,
		},
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
		{
			name: "blank and non-matching lines are skipped",
			output: "Available subtitles for dQw4w9WgXcQ:\n" +
				"\n" +
				"   \n" +
				"en       vtt, srt  English\n",
			want: []Language{
				{Code: "en", Name: "English"},
			},
		},
		{
			name: "code and name without format column",
			output: "Available subtitles for dQw4w9WgXcQ:\n" +
				"en  English\n",
			want: []Language{
				{Code: "en", Name: "English"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLanguageList(tt.output)
			if len(got) != len(tt.want) {
				t.Fatalf("parseLanguageList() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestListSubtitleLanguages(t *testing.T) {
	fake := &fakeExecutor{
		output: "Available subtitles for dQw4w9WgXcQ:\n" +
			"en       vtt, srt  English\n",
	}
	svc := newTestService(fake)

	langs, err := svc.ListSubtitleLanguages(context.Background(), "https://example.com/v")
	if err != nil {
		t.Fatalf("ListSubtitleLanguages() error = %v", err)
	}
	if len(langs) != 1 || langs[0].Code != "en" || langs[0].Name != "English" {
		t.Errorf("languages = %v, want [{en English}]", langs)
	}

	want := []string{"--skip-download", "--list-subs", "https://example.com/v"}
	if len(fake.lastArgs) != len(want) {
		t.Fatalf("args = %v, want %v", fake.lastArgs, want)
	}
	for i := range want {
		if fake.lastArgs[i] != want[i] {
			t.Fatalf("args = %v, want %v", fake.lastArgs, want)
		}
	}
}
