package session

import "strings"

// TokenCookies is the classifier output: the subsets of a cookie set that
// carry access-token and refresh-token credential material.
type TokenCookies struct {
	AccessTokens  []Cookie
	RefreshTokens []Cookie
}

// TokenClassifier partitions a cookie set into access-token and refresh-token
// subsets. Cookies matching neither class are ignored.
type TokenClassifier interface {
	Classify(cookies []Cookie) TokenCookies
}

// PrefixClassifier classifies by cookie-name prefix, matching the Proton
// backend convention of "AUTH-<uid>" access and "REFRESH-<uid>" refresh cookies.
type PrefixClassifier struct {
	AccessPrefix  string
	RefreshPrefix string
}

// NewPrefixClassifier returns a classifier for the Proton cookie naming scheme.
func NewPrefixClassifier() PrefixClassifier {
	return PrefixClassifier{
		AccessPrefix:  "AUTH-",
		RefreshPrefix: "REFRESH-",
	}
}

func (p PrefixClassifier) Classify(cookies []Cookie) TokenCookies {
	var out TokenCookies
	for _, c := range cookies {
		switch {
		case strings.HasPrefix(c.Name, p.AccessPrefix):
			out.AccessTokens = append(out.AccessTokens, c)
		case strings.HasPrefix(c.Name, p.RefreshPrefix):
			out.RefreshTokens = append(out.RefreshTokens, c)
		}
	}
	return out
}
