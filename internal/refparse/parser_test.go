package refparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/approvebot/internal/core"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		defaultRepo string
		want        core.Ref
		wantOK      bool
	}{
		{
			name:   "Full URL",
			text:   "please look at https://github.com/acme/widgets/pull/42 today",
			want:   core.Ref{Owner: "acme", Repo: "widgets", Number: 42},
			wantOK: true,
		},
		{
			name:   "Short reference",
			text:   "@bot approve acme/widgets#42",
			want:   core.Ref{Owner: "acme", Repo: "widgets", Number: 42},
			wantOK: true,
		},
		{
			name:   "URL wins over a short reference in the same text",
			text:   "other/thing#9 but really https://github.com/acme/widgets/pull/7",
			want:   core.Ref{Owner: "acme", Repo: "widgets", Number: 7},
			wantOK: true,
		},
		{
			name:        "Bare number with default repo",
			text:        "ship #12 please",
			defaultRepo: "acme/widgets",
			want:        core.Ref{Owner: "acme", Repo: "widgets", Number: 12},
			wantOK:      true,
		},
		{
			name:   "Bare number without default repo",
			text:   "ship #12 please",
			wantOK: false,
		},
		{
			name:        "Short reference wins over bare number",
			text:        "#3 or maybe acme/widgets#4",
			defaultRepo: "acme/widgets",
			want:        core.Ref{Owner: "acme", Repo: "widgets", Number: 4},
			wantOK:      true,
		},
		{
			name:   "Owner and repo casing preserved",
			text:   "Acme-Org/My_Repo#7",
			want:   core.Ref{Owner: "Acme-Org", Repo: "My_Repo", Number: 7},
			wantOK: true,
		},
		{
			name:   "Non-digit number does not match",
			text:   "acme/widgets#abc",
			wantOK: false,
		},
		{
			name:        "Malformed default repo yields nothing for bare numbers",
			text:        "#5",
			defaultRepo: "just-a-name",
			wantOK:      false,
		},
		{
			name:   "No reference at all",
			text:   "hello there",
			wantOK: false,
		},
		{
			name:   "Empty text",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.text, tt.defaultRepo)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSplitRepo(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{name: "Valid", fullName: "acme/widgets", wantOwner: "acme", wantRepo: "widgets", wantOK: true},
		{name: "Missing slash", fullName: "acme", wantOK: false},
		{name: "Empty owner", fullName: "/widgets", wantOK: false},
		{name: "Empty repo", fullName: "acme/", wantOK: false},
		{name: "Too many segments", fullName: "a/b/c", wantOK: false},
		{name: "Empty string", fullName: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ok := SplitRepo(tt.fullName)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOwner, owner)
				assert.Equal(t, tt.wantRepo, repo)
			}
		})
	}
}
