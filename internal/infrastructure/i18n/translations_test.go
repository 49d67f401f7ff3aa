package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"profitbot/internal/domain"
	"profitbot/internal/domain/entities"
	"profitbot/pkg/amount"
)

func newTestCatalog(t *testing.T, opts Options) *Catalog {
	t.Helper()
	c, err := NewCatalog(opts)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func storedMessages(t *testing.T, lang domain.Language) map[string]string {
	t.Helper()
	raw, err := localeFS.ReadFile("active." + lang.String() + ".toml")
	if err != nil {
		t.Fatalf("read embedded catalog %s: %v", lang, err)
	}
	var out map[string]string
	if err := toml.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode embedded catalog %s: %v", lang, err)
	}
	return out
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestMessageLiteralsMatchCatalogFiles(t *testing.T) {
	c := newTestCatalog(t, Options{})

	for _, lang := range domain.SupportedLanguages() {
		stored := storedMessages(t, lang)
		for _, key := range []domain.MessageKey{domain.KeyStart, domain.KeyAskAmount} {
			got, err := c.Message(lang.String(), key.String(), nil)
			if err != nil {
				t.Fatalf("Message(%s, %s): %v", lang, key, err)
			}
			if got == "" {
				t.Fatalf("Message(%s, %s) is empty", lang, key)
			}
			if got != stored[key.String()] {
				t.Fatalf("Message(%s, %s) = %q, want stored literal %q", lang, key, got, stored[key.String()])
			}
		}
	}
}

func TestMessageIgnoresAmountForLiterals(t *testing.T) {
	c := newTestCatalog(t, Options{})
	without, _ := c.Message("en", "ask_amount", nil)
	with, err := c.Message("en", "ask_amount", dec("100"))
	if err != nil || with != without {
		t.Fatalf("amount changed literal message: %q vs %q (err %v)", with, without, err)
	}
}

func TestResultConcreteScenario(t *testing.T) {
	c := newTestCatalog(t, Options{})

	got, err := c.Message("en", "result", dec("100"))
	if err != nil {
		t.Fatalf("Message(en, result, 100): %v", err)
	}
	for _, want := range []string{"100", "1.67", "12.5", "50.0"} {
		if !strings.Contains(got, want) {
			t.Fatalf("result %q does not contain %q", got, want)
		}
	}
	if !strings.Contains(got, "Daily profit: 1.67") || !strings.Contains(got, "Monthly profit: 50.0") {
		t.Fatalf("result labels wrong: %q", got)
	}
}

func TestResultEmbedsDerivedFigures(t *testing.T) {
	c := newTestCatalog(t, Options{})
	amounts := []string{"0", "1", "7.5", "100", "250.75", "1000000"}

	for _, lang := range domain.SupportedLanguages() {
		for _, a := range amounts {
			got, err := c.Message(lang.String(), "result", dec(a))
			if err != nil {
				t.Fatalf("Message(%s, result, %s): %v", lang, a, err)
			}
			p := entities.CalculateProfit(decimal.RequireFromString(a), domain.DefaultRoundingMode)
			for _, want := range []string{
				amount.Format(p.Amount),
				amount.FormatFigure(p.Daily),
				amount.FormatFigure(p.Weekly),
				amount.FormatFigure(p.Monthly),
			} {
				if !strings.Contains(got, want) {
					t.Fatalf("%s result for %s = %q, missing %q", lang, a, got, want)
				}
			}
		}
	}
}

func TestResultZeroAmount(t *testing.T) {
	c := newTestCatalog(t, Options{})
	got, err := c.Message("en", "result", dec("0"))
	if err != nil {
		t.Fatalf("Message(en, result, 0): %v", err)
	}
	for _, want := range []string{"Daily profit: 0.0", "Weekly profit: 0.0", "Monthly profit: 0.0"} {
		if !strings.Contains(got, want) {
			t.Fatalf("zero result %q missing %q", got, want)
		}
	}
}

func TestMessageIsIdempotent(t *testing.T) {
	c := newTestCatalog(t, Options{})
	for _, lang := range domain.SupportedLanguages() {
		for _, key := range domain.MessageKeys() {
			first, err1 := c.Message(lang.String(), key.String(), dec("42"))
			second, err2 := c.Message(lang.String(), key.String(), dec("42"))
			if err1 != nil || err2 != nil || first != second {
				t.Fatalf("Message(%s, %s) not idempotent: %q/%v vs %q/%v", lang, key, first, err1, second, err2)
			}
		}
	}
}

func TestMessageErrors(t *testing.T) {
	c := newTestCatalog(t, Options{})
	tests := []struct {
		lang, key string
		amount    *decimal.Decimal
		kind      error
		want      error
	}{
		{"de", "start", nil, domain.ErrLookup, domain.ErrUnknownLanguage},
		{"", "start", nil, domain.ErrLookup, domain.ErrUnknownLanguage},
		{"en", "goodbye", nil, domain.ErrLookup, domain.ErrUnknownMessage},
		{"EN", "start", nil, domain.ErrLookup, domain.ErrUnknownLanguage},
		{" en", "start", nil, domain.ErrLookup, domain.ErrUnknownLanguage},
		{"en", " start ", nil, domain.ErrLookup, domain.ErrUnknownMessage},
		{"en", "result", nil, domain.ErrInvalidArgument, domain.ErrAmountRequired},
		{"fa", "result", dec("-1"), domain.ErrInvalidArgument, domain.ErrNegativeAmount},
	}

	for _, tt := range tests {
		_, err := c.Message(tt.lang, tt.key, tt.amount)
		if !errors.Is(err, tt.kind) || !errors.Is(err, tt.want) {
			t.Fatalf("Message(%q, %q) error = %v, want %v (%v)", tt.lang, tt.key, err, tt.want, tt.kind)
		}
	}
}

func TestRoundingModeOption(t *testing.T) {
	even := newTestCatalog(t, Options{Rounding: domain.RoundHalfEven})
	up := newTestCatalog(t, Options{Rounding: domain.RoundHalfUp})

	gotEven, _ := even.Message("en", "result", dec("7.5"))
	gotUp, _ := up.Message("en", "result", dec("7.5"))
	if !strings.Contains(gotEven, "Daily profit: 0.12") {
		t.Fatalf("half_even result = %q", gotEven)
	}
	if !strings.Contains(gotUp, "Daily profit: 0.13") {
		t.Fatalf("half_up result = %q", gotUp)
	}
}

func TestOverridesDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.en.yaml"), []byte("start: \"Hello from YAML\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "custom.fa.toml"), []byte("ask_amount = \"مبلغ؟\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := newTestCatalog(t, Options{LocalesDir: dir})
	if got, _ := c.Message("en", "start", nil); got != "Hello from YAML" {
		t.Fatalf("yaml override not applied: %q", got)
	}
	if got, _ := c.Message("fa", "ask_amount", nil); got != "مبلغ؟" {
		t.Fatalf("toml override not applied: %q", got)
	}
	if got, _ := c.Message("en", "ask_amount", nil); got != storedMessages(t, domain.LanguageEnglish)["ask_amount"] {
		t.Fatalf("untouched message changed: %q", got)
	}
}

func TestOverridesDirMissing(t *testing.T) {
	if _, err := NewCatalog(Options{LocalesDir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Fatalf("expected error for missing locales dir")
	}
}

func TestCheckCoverageDetectsMissingKey(t *testing.T) {
	bundle := i18n.NewBundle(language.English)
	bundle.MustAddMessages(language.English, &i18n.Message{ID: "start", Other: "hi"})
	bundle.MustAddMessages(language.Persian, &i18n.Message{ID: "start", Other: "سلام"})

	c := &Catalog{bundle: bundle, defaultLanguage: domain.LanguageEnglish, rounding: domain.RoundHalfEven}
	if err := c.checkCoverage(); !errors.Is(err, domain.ErrUnknownMessage) {
		t.Fatalf("checkCoverage error = %v, want ErrUnknownMessage", err)
	}
}

func TestLocalizeRejectsLanguageWithoutCatalog(t *testing.T) {
	bundle := i18n.NewBundle(language.English)
	bundle.MustAddMessages(language.English, &i18n.Message{ID: "start", Other: "hi"})

	c := &Catalog{bundle: bundle, defaultLanguage: domain.LanguageEnglish, rounding: domain.RoundHalfEven}
	if _, err := c.localize(domain.LanguagePersian, domain.KeyStart, nil); !errors.Is(err, domain.ErrUnknownLanguage) {
		t.Fatalf("localize(fa) error = %v, want ErrUnknownLanguage", err)
	}
}

func TestT(t *testing.T) {
	c := newTestCatalog(t, Options{DefaultLanguage: domain.LanguagePersian})
	fa := storedMessages(t, domain.LanguagePersian)
	en := storedMessages(t, domain.LanguageEnglish)

	tests := []struct {
		lang, key, want string
	}{
		{"en-US", "invalid_amount", en["invalid_amount"]},
		{"fa", "internal_error", fa["internal_error"]},
		{"de-DE", "start", fa["start"]},
		{"en", "no_such_key", "no_such_key"},
		{"en", "", ""},
	}

	for _, tt := range tests {
		if got := c.T(tt.lang, tt.key); got != tt.want {
			t.Fatalf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
		}
	}
}

func TestConcurrentReads(t *testing.T) {
	c := newTestCatalog(t, Options{})
	want, _ := c.Message("fa", "result", dec("100"))

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := c.Message("fa", "result", dec("100"))
				if err != nil || got != want {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("concurrent read returned %q", got)
	}
}
