package umweltverband

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"abfuhrkalender/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrMalformedDirectoryPage means the municipality index no longer looks
// the way it is expected to, nothing extracted from it can be trusted.
var ErrMalformedDirectoryPage = errors.New("malformed municipality directory page")

type Municipality struct {
	Id   int
	Name string
}

// ExtractCities reads one municipality from every non-empty table row of
// the directory page, the id comes from the gem_nr parameter of the row's
// link.
func ExtractCities(ctx context.Context, doc *goquery.Document) ([]Municipality, error) {
	ctx, span := tracer.Start(ctx, "ExtractCities")
	defer span.End()

	var cities []Municipality
	var err error
	doc.Find("tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		name := htmlutil.Text(row)
		if name == "" {
			return true
		}

		anchors := htmlutil.GetAnchors(ctx, row.Find("a[href]").First())
		if len(anchors) == 0 {
			err = fmt.Errorf("%w: row %d (%q) has no link", ErrMalformedDirectoryPage, i, name)
			return false
		}

		gemNr := anchors[0].Query().Get(ParamMunicipality)
		if gemNr == "" {
			err = fmt.Errorf("%w: link of row %d (%q) has no %s", ErrMalformedDirectoryPage, i, name, ParamMunicipality)
			return false
		}
		id, convErr := strconv.Atoi(gemNr)
		if convErr != nil {
			err = fmt.Errorf("%w: row %d (%q) has non-numeric %s %q", ErrMalformedDirectoryPage, i, name, ParamMunicipality, gemNr)
			return false
		}

		cities = append(cities, Municipality{Id: id, Name: name})
		return true
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed directory")
		return nil, err
	}

	span.SetAttributes(attribute.Int("cities", len(cities)))
	return cities, nil
}
