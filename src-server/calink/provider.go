package calink

// ProviderKey identifies one of the supported calendar providers. The set is
// closed; an unrecognized key fails with UnknownProviderError instead of
// falling back to a default.
type ProviderKey string

const (
	ProviderGoogle     ProviderKey = "google"
	ProviderIcs        ProviderKey = "ics"
	ProviderYahoo      ProviderKey = "yahoo"
	ProviderWebOutlook ProviderKey = "webOutlook"
)

// initialized once, never mutated
var providerNames = map[ProviderKey]string{
	ProviderGoogle:     "Google",
	ProviderIcs:        "iCal",
	ProviderYahoo:      "Yahoo!",
	ProviderWebOutlook: "Outlook.com",
}

// GenerateAll and Providers iterate in this order
var providerOrder = []ProviderKey{
	ProviderGoogle,
	ProviderIcs,
	ProviderYahoo,
	ProviderWebOutlook,
}

// Get all known provider keys in their fixed order.
func Providers() []ProviderKey {
	keys := make([]ProviderKey, len(providerOrder))
	copy(keys, providerOrder)
	return keys
}

// Get the human-readable name of a provider, e.g. "Outlook.com" for
// "webOutlook". The second return value is false for keys outside the set.
func (k ProviderKey) DisplayName() (string, bool) {
	name, ok := providerNames[k]
	return name, ok
}
