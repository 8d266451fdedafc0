package i18n

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/snezamha/cms-core/internal/common/cnst"
)

func newLoadedI18n(t *testing.T) *I18n {
	t.Helper()
	dir := t.TempDir()
	en := "[ErrorUserNotFound]\nother = \"User not found\"\n[Greeting]\nother = \"Hello {{.Name}}\"\n"
	fa := "[ErrorUserNotFound]\nother = \"کاربر یافت نشد\"\n"
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), []byte(en), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fa.toml"), []byte(fa), 0644); err != nil {
		t.Fatal(err)
	}

	i := NewI18n(language.English)
	if err := i.LoadTranslations(dir); err != nil {
		t.Fatalf("LoadTranslations: %v", err)
	}
	return i
}

func TestI18n_Translate(t *testing.T) {
	i := newLoadedI18n(t)

	assert.Equal(t, "User not found", i.Translate("ErrorUserNotFound", "en", nil))
	assert.Equal(t, "کاربر یافت نشد", i.Translate("ErrorUserNotFound", "fa", nil))
	// untranslated locales fall back to the default language
	assert.Equal(t, "User not found", i.Translate("ErrorUserNotFound", "de", nil))
	// unknown ids pass through
	assert.Equal(t, "Nope", i.Translate("Nope", "en", nil))
}

func TestI18n_TranslateWithParams(t *testing.T) {
	i := newLoadedI18n(t)
	assert.Equal(t, "Hello Go", i.Translate("Greeting", "en", map[string]interface{}{"Name": "Go"}))
}

func TestLangFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest("GET", "/", nil)

	assert.Equal(t, defaultLang, LangFromContext(c))

	c.Set(cnst.XLang, "fa")
	assert.Equal(t, "fa", LangFromContext(c))
}

func TestErrorWithCode(t *testing.T) {
	err := NewErrorWithCode("ErrorUserNotFound", ErrorNotFound)
	assert.Equal(t, ErrorNotFound, err.GetCode())

	// WithParam returns a copy, the original is untouched
	copied := err.WithParam("Reason", "x")
	assert.Empty(t, err.Data)
	assert.Equal(t, "x", copied.Data["Reason"])
	assert.Equal(t, err.Code, copied.Code)
}

func TestRespondWithError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/", nil)

	RespondWithError(c, ErrUserNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request, _ = http.NewRequest("GET", "/", nil)
	RespondWithError(c2, assertNonI18nErr)
	assert.Equal(t, http.StatusInternalServerError, w2.Code)
}

var assertNonI18nErr = errPlain("boom")

type errPlain string

func (e errPlain) Error() string { return string(e) }
