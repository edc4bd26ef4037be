package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasAccountNamedMatchesByNameOnly(t *testing.T) {
	accounts := []Account{{ID: "1", Name: "Acme"}, {ID: "2", Name: "Beta"}}

	assert.True(t, HasAccountNamed(accounts, "Acme"))
	assert.True(t, HasAccountNamed(accounts, "Beta"))
	assert.False(t, HasAccountNamed(accounts, "acme"))
	assert.False(t, HasAccountNamed(nil, "Acme"))
}

func TestBoardCollectionKeysSorted(t *testing.T) {
	boards := BoardCollection{
		"zeta":  Board(`{}`),
		"alpha": Board(`{}`),
		"mid":   Board(`{}`),
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, boards.Keys())
	assert.Empty(t, BoardCollection(nil).Keys())
}

func TestBoardCollectionCloneDoesNotAlias(t *testing.T) {
	boards := BoardCollection{"foo": Board(`{"a":1}`)}

	cloned := boards.Clone()
	cloned["foo"][2] = 'b'
	cloned["bar"] = Board(`{}`)

	assert.Equal(t, `{"a":1}`, string(boards["foo"]))
	assert.NotContains(t, boards, "bar")
	assert.Nil(t, BoardCollection(nil).Clone())
}

func TestBoardCollectionWithout(t *testing.T) {
	boards := BoardCollection{"foo": Board(`{}`), "bar": Board(`{}`)}

	remaining := boards.Without("foo")

	assert.Equal(t, []string{"bar"}, remaining.Keys())
	assert.Len(t, boards, 2)
	require.NotNil(t, BoardCollection(nil).Without("foo"))
}

func TestUserDisplayNameFallbacks(t *testing.T) {
	name := "Ada"
	email := "ada@example.com"
	id := "42"
	empty := ""

	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "name wins", user: User{ID: &id, Name: &name, Email: &email}, want: "Ada"},
		{name: "email when name empty", user: User{ID: &id, Name: &empty, Email: &email}, want: "ada@example.com"},
		{name: "id when only id", user: User{ID: &id}, want: "42"},
		{name: "zero user", user: User{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}

	assert.True(t, User{}.IsZero())
	assert.False(t, User{Email: &email}.IsZero())
}

func TestTimeRangeLabel(t *testing.T) {
	begin := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, "default", TimeRange{}.Label())
	assert.Equal(t, "last 30m0s", TimeRange{Duration: 30 * time.Minute}.Label())
	assert.Equal(t, "2026-02-14T11:00:00Z - 2026-02-14T12:00:00Z", TimeRange{BeginTime: begin, EndTime: begin.Add(time.Hour)}.Label())
}
