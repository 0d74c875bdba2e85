package episode

import (
	"regexp"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     uint32
		wantOK   bool
		wantRule string
	}{
		{name: "season episode", filename: "Show.S01E07.mkv", want: 7, wantOK: true, wantRule: "season_episode"},
		{name: "lowercase season episode", filename: "show.s02e11.1080p.mkv", want: 11, wantOK: true, wantRule: "season_episode"},
		{name: "bare e marker", filename: "Show E03 WEB.mkv", want: 3, wantOK: true, wantRule: "season_episode"},
		{name: "leading number", filename: "01.srt", want: 1, wantOK: true, wantRule: "leading_number"},
		{name: "leading number with title", filename: "12.Show.ass", want: 12, wantOK: true, wantRule: "leading_number"},
		{name: "ep prefix", filename: "Ep01.mkv", want: 1, wantOK: true, wantRule: "ep_prefix"},
		{name: "ep prefix shadows tagged rule", filename: "[x_x] Title [Ep05].mkv", want: 5, wantOK: true, wantRule: "ep_prefix"},
		{name: "cjk marker", filename: "[Group] 作品 第07話 [1080P].mkv", want: 7, wantOK: true, wantRule: "cjk_episode"},
		{name: "full-width cjk marker", filename: "作品 第０７話.mp4", want: 7, wantOK: true, wantRule: "cjk_episode"},
		{name: "number before bracket", filename: "Show - 05 [720P].mkv", want: 5, wantOK: true, wantRule: "number_before_bracket"},
		{name: "bracketed number", filename: "[Group][Title][07].mkv", want: 7, wantOK: true, wantRule: "bracketed_number"},
		{name: "full-width brackets", filename: "［Group］［Title］［０９］.ass", want: 9, wantOK: true, wantRule: "bracketed_number"},
		{name: "two digit cap", filename: "Show E123.mkv", want: 12, wantOK: true, wantRule: "season_episode"},
		{name: "no marker", filename: "Movie.mkv", wantOK: false},
		{name: "episode word without digits", filename: "Show.Episode.05.mkv", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Explain(tc.filename)
			if ok != tc.wantOK {
				t.Fatalf("Explain(%q) ok = %v, want %v (match %+v)", tc.filename, ok, tc.wantOK, got)
			}
			if !ok {
				return
			}
			if got.Number != tc.want {
				t.Fatalf("Explain(%q) = %d, want %d", tc.filename, got.Number, tc.want)
			}
			if got.Rule != tc.wantRule {
				t.Fatalf("Explain(%q) rule = %q, want %q", tc.filename, got.Rule, tc.wantRule)
			}
			if n, ok := Extract(tc.filename); !ok || n != tc.want {
				t.Fatalf("Extract(%q) = %d, %v; want %d", tc.filename, n, ok, tc.want)
			}
		})
	}
}

func TestSeasonEpisodeAcrossSeasons(t *testing.T) {
	for ep := 1; ep <= 99; ep++ {
		name := "Show.S01E" + twoDigits(ep) + ".mkv"
		got, ok := Extract(name)
		if !ok || got != uint32(ep) {
			t.Fatalf("Extract(%q) = %d, %v; want %d", name, got, ok, ep)
		}
	}
}

func TestResolutionTagExcludesCandidate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     uint32
		wantOK   bool
		wantRule string
	}{
		// E10 collides with "10P" in every rule that can see it.
		{name: "all candidates excluded", filename: "[Sub] Title E10 [10P].mkv", wantOK: false},
		// The first E match is a resolution tag; the second survives.
		{name: "second match in same rule", filename: "Show E12P E03.mkv", want: 3, wantOK: true, wantRule: "season_episode"},
		// Rules 1 and 3 are excluded, so a later rule wins.
		{name: "falls through to later rule", filename: "Show.E20P.05 [HD].mkv", want: 5, wantOK: true, wantRule: "number_before_bracket"},
		// The check is case-sensitive.
		{name: "lowercase p is not a tag", filename: "Show E10 10p.mkv", want: 10, wantOK: true, wantRule: "season_episode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Explain(tc.filename)
			if ok != tc.wantOK {
				t.Fatalf("Explain(%q) ok = %v, want %v (match %+v)", tc.filename, ok, tc.wantOK, got)
			}
			if ok && (got.Number != tc.want || got.Rule != tc.wantRule) {
				t.Fatalf("Explain(%q) = %+v, want %d via %s", tc.filename, got, tc.want, tc.wantRule)
			}
		})
	}
}

func TestRuleOrderIsFirstWins(t *testing.T) {
	// Both the leading-number and bracket rules match; the earlier rule wins.
	got, ok := Explain("03.Show 04 [HD].ass")
	if !ok || got.Number != 3 || got.Rule != "leading_number" {
		t.Fatalf("Explain = %+v, %v; want 3 via leading_number", got, ok)
	}
}

func TestCustomExtractor(t *testing.T) {
	ex := NewExtractor([]Rule{
		{Name: "tagged_ep", Pattern: regexp.MustCompile(`(?i)\[x_x\].*?\[Ep(\d{1,2})\]`)},
	})
	got, ok := ex.Explain("[x_x] Title [Ep05].mkv")
	if !ok || got.Number != 5 || got.Rule != "tagged_ep" {
		t.Fatalf("Explain = %+v, %v", got, ok)
	}
	if _, ok := ex.Extract("Show.S01E02.mkv"); ok {
		t.Fatal("expected custom extractor to ignore rules it was not given")
	}
}

func TestDefaultRuleOrder(t *testing.T) {
	want := []string{
		"season_episode",
		"leading_number",
		"ep_prefix",
		"cjk_episode",
		"number_before_bracket",
		"bracketed_number",
		"tagged_ep",
	}
	if len(DefaultRules) != len(want) {
		t.Fatalf("got %d rules, want %d", len(DefaultRules), len(want))
	}
	for i, rule := range DefaultRules {
		if rule.Name != want[i] {
			t.Fatalf("rule %d = %s, want %s", i, rule.Name, want[i])
		}
	}
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
