package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/snezamha/cms-core/internal/common/cnst"
)

func langRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var got string
	r := gin.New()
	r.Use(LanguageMiddleware())
	r.GET("/", func(c *gin.Context) {
		got = c.GetString(cnst.XLang)
		c.Status(http.StatusOK)
	})
	return r, &got
}

func TestLanguageMiddleware_Header(t *testing.T) {
	r, got := langRouter()
	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set(cnst.XLang, "fa")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "fa", *got)
}

func TestLanguageMiddleware_UnsupportedHeaderIgnored(t *testing.T) {
	r, got := langRouter()
	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set(cnst.XLang, "xx")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "en", *got)
}

func TestLanguageMiddleware_SettingsCookie(t *testing.T) {
	r, got := langRouter()
	req, _ := http.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: cnst.SettingsCookie, Value: url.QueryEscape(`{"theme":"zinc","locale":"de"}`)})
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "de", *got)
}

func TestLanguageMiddleware_HeaderBeatsCookie(t *testing.T) {
	r, got := langRouter()
	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set(cnst.XLang, "fa")
	req.AddCookie(&http.Cookie{Name: cnst.SettingsCookie, Value: `{"locale":"de"}`})
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "fa", *got)
}

func TestLanguageMiddleware_MalformedCookieIgnored(t *testing.T) {
	r, got := langRouter()
	req, _ := http.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: cnst.SettingsCookie, Value: `{broken`})
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "en", *got)
}

func TestLanguageMiddleware_AcceptLanguage(t *testing.T) {
	r, got := langRouter()
	req, _ := http.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "de", *got)
}

func TestLanguageMiddleware_Default(t *testing.T) {
	r, got := langRouter()
	req, _ := http.NewRequest("GET", "/", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "en", *got)
}
