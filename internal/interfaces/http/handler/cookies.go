package handler

import (
	"net/http"
	"strings"

	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/amunitsiia/shop/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// CartCookies reads and writes the cookie cart and the one-shot restore flag
type CartCookies struct {
	cookie config.CookieConfig
	shop   config.ShopConfig
}

// NewCartCookies creates the cookie helper
func NewCartCookies(cookie config.CookieConfig, shop config.ShopConfig) CartCookies {
	if shop.CartCookie == "" {
		shop.CartCookie = "cart"
	}
	if shop.FlagCookie == "" {
		shop.FlagCookie = "flag"
	}
	return CartCookies{cookie: cookie, shop: shop}
}

// Raw returns the undecoded cart cookie, empty when absent
func (cc CartCookies) Raw(c *gin.Context) string {
	raw, err := c.Cookie(cc.shop.CartCookie)
	if err != nil {
		return ""
	}
	return raw
}

// Cart parses the cart cookie; a missing cookie is an empty cart
func (cc CartCookies) Cart(c *gin.Context) (trade.Cart, error) {
	return trade.ParseCart(cc.Raw(c))
}

// RestoreRequested reports whether the restore flag set at sign-in is present
func (cc CartCookies) RestoreRequested(c *gin.Context) bool {
	v, err := c.Cookie(cc.shop.FlagCookie)
	return err == nil && v != "" && !strings.EqualFold(v, "false")
}

// SetCart stores the cart in the cookie
func (cc CartCookies) SetCart(c *gin.Context, cart trade.Cart) {
	cc.set(c, cc.shop.CartCookie, cart.Encode(), int(cc.shop.CartCookieMaxAge.Seconds()))
}

// ResetCart replaces the cookie cart with an empty one
func (cc CartCookies) ResetCart(c *gin.Context) {
	cc.SetCart(c, trade.Cart{})
}

// ClearCart deletes the cart cookie
func (cc CartCookies) ClearCart(c *gin.Context) {
	cc.set(c, cc.shop.CartCookie, "", -1)
}

// SetRestoreFlag asks the next page load to rebuild the cookie cart; it expires after one second
func (cc CartCookies) SetRestoreFlag(c *gin.Context) {
	cc.set(c, cc.shop.FlagCookie, "true", 1)
}

func (cc CartCookies) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(sameSite(cc.cookie.SameSite))
	c.SetCookie(name, value, maxAge, cc.cookie.Path, cc.cookie.Domain, cc.cookie.Secure, false)
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
