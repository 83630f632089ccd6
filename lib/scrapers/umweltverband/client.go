package umweltverband

import "context"

// Client knows the portal's query layout, the Fetcher knows how to get a
// page for a query.
type Client struct {
	Fetcher Fetcher
	Portal  Portal
}

func NewClient(fetcher Fetcher, portal Portal) Client {
	return Client{Fetcher: fetcher, Portal: portal}
}

// Cities fetches and parses the municipality directory.
func (c Client) Cities(ctx context.Context) ([]Municipality, error) {
	ctx, span := tracer.Start(ctx, "client:Cities")
	defer span.End()

	doc, err := c.Fetcher.Fetch(ctx, c.Portal.Payload(nil))
	if err != nil {
		return nil, err
	}
	return ExtractCities(ctx, doc)
}

// RawNotices fetches a municipality's schedule for `year` and returns the
// unparsed pickup notices on it.
func (c Client) RawNotices(ctx context.Context, municipalityId, year int) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:RawNotices")
	defer span.End()

	doc, err := c.Fetcher.Fetch(ctx, c.Portal.Payload(timetablePayload(municipalityId, year)))
	if err != nil {
		return nil, err
	}
	return ExtractNotices(doc), nil
}
