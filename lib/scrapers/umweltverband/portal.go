package umweltverband

import (
	"net/url"
	"strconv"
)

const DefaultBaseUrl = "https://baden.umweltverbaende.at/"

// query parameter names understood by the portal
const (
	ParamCategory     = "kat"
	ParamPortal       = "portal"
	ParamRegion       = "vb"
	ParamYear         = "jahr"
	ParamMunicipality = "gem_nr"
)

// Portal selects which association's pages the umweltverbaende portal
// renders. Every request carries these parameters.
type Portal struct {
	BaseUrl  string `json:"base_url"`
	Category int    `json:"category"`
	Portal   string `json:"portal"`
	Region   string `json:"region"`
}

// DefaultPortal is the waste-collection calendar of the GVA Baden.
var DefaultPortal = Portal{
	BaseUrl:  DefaultBaseUrl,
	Category: 32,
	Portal:   "verband",
	Region:   "bn",
}

// Payload returns `extra` plus the fixed portal selection parameters.
func (p Portal) Payload(extra url.Values) url.Values {
	payload := url.Values{}
	for k, v := range extra {
		payload[k] = append([]string(nil), v...)
	}
	payload.Set(ParamCategory, strconv.Itoa(p.Category))
	payload.Set(ParamPortal, p.Portal)
	payload.Set(ParamRegion, p.Region)
	return payload
}

// PageURL renders the url a browser has to open for `payload`.
func PageURL(baseUrl string, payload url.Values) (string, error) {
	link, err := url.Parse(baseUrl)
	if err != nil {
		return "", err
	}
	query := link.Query()
	for k, v := range payload {
		query[k] = v
	}
	link.RawQuery = query.Encode()
	return link.String(), nil
}

func timetablePayload(municipalityId, year int) url.Values {
	return url.Values{
		ParamYear:         {strconv.Itoa(year)},
		ParamMunicipality: {strconv.Itoa(municipalityId)},
	}
}
