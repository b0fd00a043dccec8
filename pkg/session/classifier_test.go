package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhhb/electronmail/pkg/session"
)

func TestPrefixClassifier(t *testing.T) {
	classifier := session.NewPrefixClassifier()

	t.Run("partitions by proton name prefixes", func(t *testing.T) {
		tokens := classifier.Classify([]session.Cookie{
			{Name: "AUTH-uid-1", Value: "a"},
			{Name: "REFRESH-uid-1", Value: "r"},
			{Name: "Session-Id", Value: "other"},
			{Name: "Tag", Value: "other"},
		})

		assert.Len(t, tokens.AccessTokens, 1)
		assert.Len(t, tokens.RefreshTokens, 1)
		assert.Equal(t, "AUTH-uid-1", tokens.AccessTokens[0].Name)
		assert.Equal(t, "REFRESH-uid-1", tokens.RefreshTokens[0].Name)
	})

	t.Run("empty input yields empty subsets", func(t *testing.T) {
		tokens := classifier.Classify(nil)
		assert.Empty(t, tokens.AccessTokens)
		assert.Empty(t, tokens.RefreshTokens)
	})

	t.Run("preserves input order within a subset", func(t *testing.T) {
		tokens := classifier.Classify([]session.Cookie{
			{Name: "AUTH-first"},
			{Name: "AUTH-second"},
		})
		assert.Equal(t, "AUTH-first", tokens.AccessTokens[0].Name)
		assert.Equal(t, "AUTH-second", tokens.AccessTokens[1].Name)
	})

	t.Run("prefix match is case sensitive", func(t *testing.T) {
		tokens := classifier.Classify([]session.Cookie{
			{Name: "auth-uid"},
			{Name: "refresh-uid"},
		})
		assert.Empty(t, tokens.AccessTokens)
		assert.Empty(t, tokens.RefreshTokens)
	})

	t.Run("custom prefixes", func(t *testing.T) {
		custom := session.PrefixClassifier{AccessPrefix: "AT_", RefreshPrefix: "RT_"}
		tokens := custom.Classify([]session.Cookie{
			{Name: "AT_x"},
			{Name: "RT_x"},
			{Name: "AUTH-x"},
		})
		assert.Len(t, tokens.AccessTokens, 1)
		assert.Len(t, tokens.RefreshTokens, 1)
	})
}
