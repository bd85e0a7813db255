package cookie

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is the plain cookie the web client sets when it is
// served from the same site as the API.
const AccessTokenCookieName = "sb-access-token"

// The platform's SSR helpers store the whole session as
// sb-<project-ref>-auth-token, split into .0, .1, ... chunks when large.
const (
	sessionPrefix = "sb-"
	sessionSuffix = "-auth-token"
	base64Prefix  = "base64-"
)

// GetAccessToken returns the access token from the plain cookie, or from a
// platform session cookie. It returns "" when neither is usable.
func GetAccessToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookieName); err == nil && token != "" {
		return token
	}
	for _, raw := range sessionValues(c) {
		if token := accessTokenFromSession(raw); token != "" {
			return token
		}
	}
	return ""
}

// sessionValues joins chunked session cookies and returns one value per
// session cookie family.
func sessionValues(c *gin.Context) []string {
	whole := map[string]string{}
	chunks := map[string]map[int]string{}
	for _, ck := range c.Request.Cookies() {
		if !strings.HasPrefix(ck.Name, sessionPrefix) {
			continue
		}
		name, idx, chunked := strings.Cut(ck.Name, ".")
		if !strings.HasSuffix(name, sessionSuffix) {
			continue
		}
		if !chunked {
			whole[name] = ck.Value
			continue
		}
		n, err := strconv.Atoi(idx)
		if err != nil {
			continue
		}
		if chunks[name] == nil {
			chunks[name] = map[int]string{}
		}
		chunks[name][n] = ck.Value
	}

	for name, parts := range chunks {
		if _, ok := whole[name]; ok {
			continue
		}
		var b strings.Builder
		for i := 0; ; i++ {
			part, ok := parts[i]
			if !ok {
				break
			}
			b.WriteString(part)
		}
		whole[name] = b.String()
	}

	names := make([]string, 0, len(whole))
	for name := range whole {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, whole[name])
	}
	return out
}

// accessTokenFromSession accepts the current {"access_token": ...} object,
// optionally base64 encoded, and the older [access, refresh] array.
func accessTokenFromSession(raw string) string {
	if v, err := url.QueryUnescape(raw); err == nil {
		raw = v
	}
	if rest, ok := strings.CutPrefix(raw, base64Prefix); ok {
		decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(rest, "="))
		if err != nil {
			return ""
		}
		raw = string(decoded)
	}

	var session struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal([]byte(raw), &session); err == nil {
		return session.AccessToken
	}
	var legacy []*string
	if err := json.Unmarshal([]byte(raw), &legacy); err == nil && len(legacy) > 0 && legacy[0] != nil {
		return *legacy[0]
	}
	return ""
}
