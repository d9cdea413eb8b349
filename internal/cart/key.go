package cart

import "encoding/json"

// lineKey is the dedup identity for a line: product id plus a canonical
// encoding of the custom configuration. encoding/json writes map keys in
// sorted order at every nesting level, so two configurations that differ
// only in key order produce the same key.
func lineKey(productID string, cfg map[string]any) string {
	if len(cfg) == 0 {
		return productID
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		return productID
	}
	return productID + "|" + string(b)
}
