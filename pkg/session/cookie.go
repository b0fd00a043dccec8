package session

// SameSite mirrors the native cookie same-site attribute.
type SameSite string

const (
	SameSiteNone   SameSite = "none"
	SameSiteLax    SameSite = "lax"
	SameSiteStrict SameSite = "strict"
)

// Cookie is the persisted subset of a captured cookie. Other native attributes
// (domain, expiry, priority) are dropped at capture time; restoration derives
// them from the target origin instead.
type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Path     string `json:"path"`
	HTTPOnly bool   `json:"httpOnly"`
	Secure   bool   `json:"secure"`
}

// CookieFilter narrows a live-jar read. Zero value matches everything.
type CookieFilter struct {
	URL  string `json:"url,omitempty"`
	Name string `json:"name,omitempty"`
}

// SetCookieParams describes a cookie write against a live jar.
type SetCookieParams struct {
	URL      string   `json:"url"`
	Name     string   `json:"name"`
	Value    string   `json:"value"`
	Path     string   `json:"path,omitempty"`
	Secure   bool     `json:"secure"`
	HTTPOnly bool     `json:"httpOnly"`
	SameSite SameSite `json:"sameSite,omitempty"`
}

// restoreParams builds the write used to re-apply a captured cookie to a live
// jar. Cross-site delivery requires SameSite=None, and None requires Secure,
// so both are forced regardless of the captured attributes.
func restoreParams(c Cookie, originURL string) SetCookieParams {
	return SetCookieParams{
		URL:      originURL,
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		HTTPOnly: c.HTTPOnly,
		Secure:   true,
		SameSite: SameSiteNone,
	}
}
