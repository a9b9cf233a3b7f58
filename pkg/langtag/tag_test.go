package langtag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localekit/pkg/langtag"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses primary subtag only", func(t *testing.T) {
		t.Parallel()
		tag, err := langtag.Parse("de")
		require.NoError(t, err)
		require.Equal(t, "de", tag.Primary())
		require.Empty(t, tag.Script())
		require.Empty(t, tag.Region())
		require.Empty(t, tag.Variants())
	})

	t.Run("parses script and region", func(t *testing.T) {
		t.Parallel()
		tag, err := langtag.Parse("zh-Hant-TW")
		require.NoError(t, err)
		require.Equal(t, "zh", tag.Primary())
		require.Equal(t, "Hant", tag.Script())
		require.Equal(t, "TW", tag.Region())
	})

	t.Run("parses variants", func(t *testing.T) {
		t.Parallel()
		tag, err := langtag.Parse("de-DE-1996")
		require.NoError(t, err)
		require.Equal(t, "de", tag.Primary())
		require.Equal(t, "DE", tag.Region())
		require.Equal(t, []string{"1996"}, tag.Variants())
	})

	t.Run("canonicalizes subtag case", func(t *testing.T) {
		t.Parallel()
		tag, err := langtag.Parse("ZH-hant-tw")
		require.NoError(t, err)
		require.Equal(t, "zh-Hant-TW", tag.String())
	})

	t.Run("accepts underscore separators", func(t *testing.T) {
		t.Parallel()
		tag, err := langtag.Parse("en_US")
		require.NoError(t, err)
		require.Equal(t, "en-US", tag.String())
	})

	t.Run("parses numeric region", func(t *testing.T) {
		t.Parallel()
		tag, err := langtag.Parse("es-419")
		require.NoError(t, err)
		require.Equal(t, "419", tag.Region())
	})

	t.Run("und parses to the empty tag", func(t *testing.T) {
		t.Parallel()
		tag, err := langtag.Parse("und")
		require.NoError(t, err)
		require.True(t, tag.IsEmpty())
		require.Equal(t, "und", tag.String())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()
		_, err := langtag.Parse("")
		require.ErrorIs(t, err, langtag.ErrEmptyTag)
	})

	t.Run("rejects malformed primary subtag", func(t *testing.T) {
		t.Parallel()
		_, err := langtag.Parse("d3")
		require.ErrorIs(t, err, langtag.ErrInvalidTag)
	})

	t.Run("rejects unknown subtag shape", func(t *testing.T) {
		t.Parallel()
		_, err := langtag.Parse("de-DE-x!")
		require.ErrorIs(t, err, langtag.ErrInvalidTag)
	})
}

func TestTagEqual(t *testing.T) {
	t.Parallel()

	t.Run("case-insensitive via canonicalization", func(t *testing.T) {
		t.Parallel()
		require.True(t, langtag.MustParse("EN-us").Equal(langtag.MustParse("en-US")))
	})

	t.Run("region difference breaks equality", func(t *testing.T) {
		t.Parallel()
		require.False(t, langtag.MustParse("de-DE").Equal(langtag.MustParse("de-CH")))
	})

	t.Run("variant difference breaks equality", func(t *testing.T) {
		t.Parallel()
		require.False(t, langtag.MustParse("de-DE-1996").Equal(langtag.MustParse("de-DE")))
	})
}

func TestTagMatches(t *testing.T) {
	t.Parallel()

	t.Run("exact match requires all subtags", func(t *testing.T) {
		t.Parallel()
		require.True(t, langtag.MustParse("de-DE").Matches(langtag.MustParse("de-DE"), false, false))
		require.False(t, langtag.MustParse("de").Matches(langtag.MustParse("de-DE"), false, false))
	})

	t.Run("self as range wildcards absent subtags", func(t *testing.T) {
		t.Parallel()
		require.True(t, langtag.MustParse("de").Matches(langtag.MustParse("de-DE"), true, false))
		require.False(t, langtag.MustParse("de-CH").Matches(langtag.MustParse("de-DE"), true, false))
	})

	t.Run("present subtags never wildcard", func(t *testing.T) {
		t.Parallel()
		require.False(t, langtag.MustParse("de-DE-1996").Matches(langtag.MustParse("de-DE"), true, false))
	})

	t.Run("other as range wildcards the other side", func(t *testing.T) {
		t.Parallel()
		require.True(t, langtag.MustParse("de-DE").Matches(langtag.MustParse("de"), false, true))
	})
}

func TestSpecificity(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, langtag.MustParse("de").Specificity())
	require.Equal(t, 1, langtag.MustParse("de-DE").Specificity())
	require.Equal(t, 2, langtag.MustParse("zh-Hant-TW").Specificity())
	require.Equal(t, 2, langtag.MustParse("de-DE-1996").Specificity())
}
