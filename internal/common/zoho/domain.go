package zoho

import (
	"strings"

	"golang.org/x/oauth2"
)

// DefaultAccountsDomain is used when the API domain is empty or matches no
// regional suffix.
const DefaultAccountsDomain = "https://accounts.zoho.com"

// regionalAccountsDomains is checked in order; the first suffix contained in
// the API domain wins. There is deliberately no generic ".com" rule.
var regionalAccountsDomains = []struct {
	suffix   string
	accounts string
}{
	{".eu", "https://accounts.zoho.eu"},
	{".in", "https://accounts.zoho.in"},
	{".com.au", "https://accounts.zoho.com.au"},
	{".jp", "https://accounts.zoho.jp"},
	{".sa", "https://accounts.zoho.sa"},
}

// AccountsDomain maps a regional API domain (e.g. https://www.zohoapis.eu)
// to the accounts domain that issues its tokens.
func AccountsDomain(apiDomain string) string {
	if apiDomain == "" {
		return DefaultAccountsDomain
	}
	for _, r := range regionalAccountsDomains {
		if strings.Contains(apiDomain, r.suffix) {
			return r.accounts
		}
	}
	return DefaultAccountsDomain
}

// Endpoint returns the OAuth endpoint of an accounts domain. Zoho expects the
// client credentials in the form body.
func Endpoint(accountsDomain string) oauth2.Endpoint {
	accountsDomain = strings.TrimSuffix(accountsDomain, "/")
	return oauth2.Endpoint{
		AuthURL:   accountsDomain + "/oauth/v2/auth",
		TokenURL:  accountsDomain + "/oauth/v2/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
}
