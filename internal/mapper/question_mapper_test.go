package mapper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"classroom-portal-fe/internal/entity"
)

func TestToCardPreviewTruncation(t *testing.T) {
	m := NewQuestionMapper()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "short body untouched",
			body: "short",
			want: "short",
		},
		{
			name: "exactly 200 characters untouched",
			body: strings.Repeat("a", 200),
			want: strings.Repeat("a", 200),
		},
		{
			name: "long body cut to first 200 characters",
			body: strings.Repeat("a", 199) + "bREST",
			want: strings.Repeat("a", 199) + "b",
		},
		{
			name: "multibyte characters counted as characters, not bytes",
			body: strings.Repeat("é", 250),
			want: strings.Repeat("é", 200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := m.ToCard(&entity.Question{Id: 1, Title: "t", Body: tt.body})
			assert.Equal(t, tt.want, card.Preview)
		})
	}
}

func TestToCardPreviewKeepsRawText(t *testing.T) {
	// Escaping happens at render time; the preview must stay raw so the
	// template escapes the original characters, never a pre-escaped string.
	m := NewQuestionMapper()
	card := m.ToCard(&entity.Question{Id: 1, Title: "t", Body: `<b>&"'</b>`})
	assert.Equal(t, `<b>&"'</b>`, card.Preview)
}

func TestToCards(t *testing.T) {
	m := NewQuestionMapper()
	cards := m.ToCards([]entity.Question{
		{Id: 1, Title: "first", Upvotes: 2, Downvotes: 1},
		{Id: 2, Title: "second"},
	})
	assert.Len(t, cards, 2)
	assert.Equal(t, "first", cards[0].Title)
	assert.Equal(t, 2, cards[0].Upvotes)
	assert.Equal(t, 2, cards[1].Id)
}
