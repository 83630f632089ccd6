package umweltverband

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func parseDocument(t testing.TB, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestExtractCities(t *testing.T) {
	testCases := []struct {
		name     string
		html     string
		expected []Municipality
	}{
		{
			name: "single row",
			html: `<table><tr><td><a href="?gem_nr=42">Seestadt</a></td></tr></table>`,
			expected: []Municipality{
				{Id: 42, Name: "Seestadt"},
			},
		},
		{
			name: "empty rows are skipped",
			html: `<table>
				<tr><th></th></tr>
				<tr><td><a href="?kat=32&portal=verband&vb=bn&gem_nr=7"> Musterstadt </a></td></tr>
				<tr><td>   </td></tr>
				<tr><td><a href="/index.php?gem_nr=11&vb=bn">Bad
					Vöslau</a></td></tr>
			</table>`,
			expected: []Municipality{
				{Id: 7, Name: "Musterstadt"},
				{Id: 11, Name: "Bad Vöslau"},
			},
		},
		{
			name:     "no rows",
			html:     `<p>nothing here</p>`,
			expected: nil,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			cities, err := ExtractCities(context.Background(), parseDocument(t, test.html))
			require.NoError(t, err)
			if diff := cmp.Diff(test.expected, cities); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestExtractCitiesMalformed(t *testing.T) {
	testCases := []struct {
		name string
		html string
	}{
		{
			name: "row without anchor",
			html: `<table>
				<tr><td><a href="?gem_nr=1">Ok</a></td></tr>
				<tr><td>Seestadt</td></tr>
			</table>`,
		},
		{
			name: "anchor without gem_nr",
			html: `<table><tr><td><a href="?kat=32">Seestadt</a></td></tr></table>`,
		},
		{
			name: "non numeric gem_nr",
			html: `<table><tr><td><a href="?gem_nr=abc">Seestadt</a></td></tr></table>`,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			cities, err := ExtractCities(context.Background(), parseDocument(t, test.html))
			require.ErrorIs(t, err, ErrMalformedDirectoryPage)
			require.Nil(t, cities)
		})
	}
}
