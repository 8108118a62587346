package middleware

import (
	"net/http"
	"strings"

	"experience-market/internal/pkg/config"
	"experience-market/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

const refQueryParam = "ref"

// authPages are the sign-in surfaces an already-authenticated user has no
// business visiting; they get bounced home before any referral handling.
var authPages = map[string]struct{}{
	"/login":    {},
	"/register": {},
}

// ReferralAttribution captures ?ref=CODE into the referral cookie with
// last-touch semantics: whoever referred the visitor most recently wins, and
// the cookie is overwritten unconditionally. Checkout later reads the cookie
// to stamp the booking. Must run after OptionalAuth.
func ReferralAttribution(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The authenticated-user redirect takes precedence over attribution:
		// a signed-in user following a referral link to /login goes straight
		// home and no cookie is written.
		if _, isAuthPage := authPages[c.Request.URL.Path]; isAuthPage && IsAuthenticated(c) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		if code := strings.TrimSpace(c.Query(refQueryParam)); code != "" {
			cookie.SetReferralCookie(c, cfg, code)
		}

		c.Next()
	}
}
