package port

// URLParamExtractor returns the parameters carried by a location URL. An empty
// or unparsable URL yields an empty map.
type URLParamExtractor func(locationURL string) map[string]string
