// The `calink` package turns a calendar event into "add to calendar" links.
//
// # References:
// - RFC5545: https://datatracker.ietf.org/doc/html/rfc5545
//
// # Notes:
// - Four providers are supported: Google, Yahoo! and Outlook.com get a
//   pre-filled event-creation URL; "ics" gets an iCalendar body wrapped in a
//   base64 data: URI the browser saves as a file.
// - The package is purely computational: no I/O, no shared mutable state.
//   The only process-wide data is the read-only provider-name table, so
//   concurrent calls need no locking.
//
// # Example usage:
//
// One provider
//	event, _ := calink.NewEvent(calink.EventInput{...})
//	link, _ := calink.Generate(calink.ProviderGoogle, event)
//
// Every provider at once
//	links, _ := calink.GenerateAll(event)

package calink

// LinkResult is one generated link plus the provider it belongs to.
type LinkResult struct {
	TypeKey  ProviderKey `json:"typeKey"`
	TypeName string      `json:"typeName"`
	URL      string      `json:"url"`
}

// Build the link for a single provider. Unknown keys fail with
// UnknownProviderError; nothing falls back to a default provider.
func Generate(key ProviderKey, event *Event) (string, error) {
	if event == nil {
		return "", NewInvalidEventError("event is nil", map[string]any{
			"provider": key,
		})
	}
	switch key {
	case ProviderGoogle:
		return buildGoogleLink(event), nil
	case ProviderIcs:
		return packDataURI(event.ToIcal()), nil
	case ProviderYahoo:
		return buildYahooLink(event), nil
	case ProviderWebOutlook:
		return buildWebOutlookLink(event), nil
	default:
		return "", NewUnknownProviderError("provider not in the known set", map[string]any{
			"provider": key,
		})
	}
}

// Build links for every known provider, in the fixed order google, ics,
// yahoo, webOutlook. Any single failure fails the whole call; a partial set
// would misrepresent which calendar options are available.
func GenerateAll(event *Event) ([]LinkResult, error) {
	results := make([]LinkResult, 0, len(providerOrder))
	for _, key := range providerOrder {
		link, err := Generate(key, event)
		if err != nil {
			return nil, err
		}
		results = append(results, LinkResult{
			TypeKey:  key,
			TypeName: providerNames[key],
			URL:      link,
		})
	}
	return results, nil
}
