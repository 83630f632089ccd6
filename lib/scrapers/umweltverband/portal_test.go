package umweltverband

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPortalPayload(t *testing.T) {
	extra := url.Values{ParamYear: {"2021"}, ParamCategory: {"1"}}
	payload := DefaultPortal.Payload(extra)

	require.Equal(t, "32", payload.Get(ParamCategory))
	require.Equal(t, "2021", payload.Get(ParamYear))
	// the caller's values are not modified
	require.Equal(t, "1", extra.Get(ParamCategory))
	require.Len(t, extra, 2)
}

func TestPageURL(t *testing.T) {
	link, err := PageURL(DefaultBaseUrl, DefaultPortal.Payload(timetablePayload(42, 2021)))
	require.NoError(t, err)
	require.Equal(t, "https://baden.umweltverbaende.at/?gem_nr=42&jahr=2021&kat=32&portal=verband&vb=bn", link)

	_, err = PageURL("://broken", url.Values{})
	require.Error(t, err)
}
