package api

import "strings"

// PlaceholderImage is returned when a record has no stored image path.
const PlaceholderImage = "placeholder.png"

// UploadURL builds the convention-based static asset URL under the general
// API's upload root: {base}/uploads/{kind}/{name}. Empty names fall back to
// the local placeholder.
func (c *Client) UploadURL(kind, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return PlaceholderImage
	}
	return c.baseURL + "/uploads/" + kind + "/" + name
}
