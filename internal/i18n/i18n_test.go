package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLocaleContext(target, acceptLanguage string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}
	return c
}

func TestResolveLocale(t *testing.T) {
	cases := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "default", target: "/", want: LocaleZhCN},
		{name: "accept english", target: "/", header: "en-GB,en;q=0.9", want: LocaleEnUS},
		{name: "accept chinese", target: "/", header: "zh-CN,zh;q=0.9,en;q=0.5", want: LocaleZhCN},
		{name: "query wins", target: "/?lang=en", header: "zh-CN", want: LocaleEnUS},
		{name: "garbage header", target: "/", header: ";;;", want: LocaleZhCN},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveLocale(newLocaleContext(tc.target, tc.header))
			if got != tc.want {
				t.Fatalf("locale want %s got %s", tc.want, got)
			}
		})
	}
}

func TestTFallback(t *testing.T) {
	if got := T(LocaleEnUS, "error.cart_empty"); got != "Cart is empty" {
		t.Fatalf("unexpected english message: %s", got)
	}
	if got := T("fr-FR", "error.cart_empty"); got != messages[DefaultLocale]["error.cart_empty"] {
		t.Fatalf("unknown locale should fall back to default, got %s", got)
	}
	if got := T(LocaleEnUS, "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("missing key should echo key, got %s", got)
	}
	if got := Sprintf(LocaleEnUS, "error.rate_limited", 3); got != "Too many requests, retry in 3 seconds" {
		t.Fatalf("unexpected formatted message: %s", got)
	}
}
