package claims

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mapClaimProvider serves claims from a fixed subject/claim/tag table and
// records the lookups it receives.
type mapClaimProvider struct {
	values  map[string]map[string]map[string]any
	lookups []string
}

func (p *mapClaimProvider) UserClaimValue(_ context.Context, subject, claimName, languageTag string) any {
	p.lookups = append(p.lookups, claimName+"#"+languageTag)
	bySubject, ok := p.values[subject]
	if !ok {
		return nil
	}
	byClaim, ok := bySubject[claimName]
	if !ok {
		return nil
	}
	return byClaim[languageTag]
}

func TestNormalizeLocales(t *testing.T) {
	tests := []struct {
		name    string
		locales []string
		want    []string
	}{
		{
			name:    "lowercases and deduplicates preserving order",
			locales: []string{"EN", "en", "FR"},
			want:    []string{"en", "fr"},
		},
		{
			name:    "drops empty entries",
			locales: []string{"", "ja", ""},
			want:    []string{"ja"},
		},
		{
			name:    "nil input means no preference",
			locales: nil,
			want:    nil,
		},
		{
			name:    "all-empty input means no preference",
			locales: []string{"", ""},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLocales(tt.locales))
		})
	}
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		raw    string
		want   Request
		wantOK bool
	}{
		{raw: "family_name", want: Request{Name: "family_name"}, wantOK: true},
		{raw: "family_name#ja", want: Request{Name: "family_name", Tag: "ja"}, wantOK: true},
		{raw: "family_name#", want: Request{Name: "family_name"}, wantOK: true},
		{raw: "#ja", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseRequest(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestKey(t *testing.T) {
	assert.Equal(t, "family_name", Request{Name: "family_name"}.Key())
	assert.Equal(t, "family_name#ja", Request{Name: "family_name", Tag: "ja"}.Key())
}

func TestCollect(t *testing.T) {
	ctx := context.Background()

	provider := func() *mapClaimProvider {
		return &mapClaimProvider{values: map[string]map[string]map[string]any{
			"alice": {
				"family_name": {"": "Smith", "ja": "スミス"},
				"given_name":  {"fr": "Alice"},
				"email":       {"": "alice@example.com"},
			},
		}}
	}

	t.Run("explicit tag pins the lookup with no fallback", func(t *testing.T) {
		got := Collect(ctx, "alice", []string{"family_name#ja", "given_name#ja"}, []string{"fr"}, provider())
		assert.Equal(t, map[string]any{"family_name#ja": "スミス"}, got)
	})

	t.Run("untagged claim with no preferences uses untagged value", func(t *testing.T) {
		got := Collect(ctx, "alice", []string{"family_name"}, nil, provider())
		assert.Equal(t, map[string]any{"family_name": "Smith"}, got)
	})

	t.Run("locale preference order decides, untagged is the fallback", func(t *testing.T) {
		got := Collect(ctx, "alice", []string{"given_name", "email"}, []string{"DE", "FR"}, provider())
		assert.Equal(t, map[string]any{"given_name": "Alice", "email": "alice@example.com"}, got)
	})

	t.Run("unknown subject yields nil not empty map", func(t *testing.T) {
		got := Collect(ctx, "nobody", []string{"family_name"}, nil, provider())
		assert.Nil(t, got)
	})

	t.Run("no requested claims yields nil without lookups", func(t *testing.T) {
		p := provider()
		got := Collect(ctx, "alice", nil, []string{"en"}, p)
		assert.Nil(t, got)
		assert.Empty(t, p.lookups)
	})

	t.Run("malformed identifiers are skipped", func(t *testing.T) {
		got := Collect(ctx, "alice", []string{"#ja", "", "email"}, nil, provider())
		assert.Equal(t, map[string]any{"email": "alice@example.com"}, got)
	})
}
