package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"profitbot/internal/domain"
	"profitbot/internal/domain/entities"
	"profitbot/internal/ports/output"
	"profitbot/pkg/amount"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Catalog implements the output.Catalog port.
var _ output.Catalog = (*Catalog)(nil)

// Options configures NewCatalog. Zero values select the defaults.
type Options struct {
	DefaultLanguage domain.Language
	Rounding        domain.RoundingMode
	// LocalesDir, when set, holds *.toml / *.yaml files loaded after the
	// embedded catalog. Their messages replace the embedded ones.
	LocalesDir string
}

// Catalog is the message catalog backed by a go-i18n Bundle. It is immutable
// after NewCatalog returns and safe for concurrent use.
type Catalog struct {
	bundle          *i18n.Bundle
	defaultLanguage domain.Language
	rounding        domain.RoundingMode
}

// NewCatalog loads the embedded active.*.toml files, then any overrides, and
// verifies that every supported language defines every message key.
func NewCatalog(opts Options) (*Catalog, error) {
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = domain.LanguagePersian
	}
	if opts.Rounding == "" {
		opts.Rounding = domain.DefaultRoundingMode
	}

	bundle := i18n.NewBundle(opts.DefaultLanguage.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	files, err := fs.Glob(localeFS, "active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list embedded catalogs: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}

	if opts.LocalesDir != "" {
		if err := loadOverrides(bundle, opts.LocalesDir); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		bundle:          bundle,
		defaultLanguage: opts.DefaultLanguage,
		rounding:        opts.Rounding,
	}
	if err := c.checkCoverage(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadOverrides(bundle *i18n.Bundle, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("i18n: read locales dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".toml", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return fmt.Errorf("i18n: load %s: %w", path, err)
		}
		log.Printf("✅ i18n: override loaded: %s", path)
	}
	return nil
}

// checkCoverage renders every key in every supported language once.
func (c *Catalog) checkCoverage() error {
	sample := resultData(entities.CalculateProfit(decimal.NewFromInt(100), c.rounding))
	for _, lang := range domain.SupportedLanguages() {
		for _, key := range domain.MessageKeys() {
			var data map[string]any
			if key == domain.KeyResult {
				data = sample
			}
			if _, err := c.localize(lang, key, data); err != nil {
				return fmt.Errorf("i18n: incomplete catalog: %w", err)
			}
		}
	}
	return nil
}

// DefaultLanguage returns the language used when a locale cannot be matched.
func (c *Catalog) DefaultLanguage() domain.Language { return c.defaultLanguage }

// Message implements output.Catalog.
func (c *Catalog) Message(language, key string, investment *decimal.Decimal) (string, error) {
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return "", err
	}
	k, err := domain.ParseMessageKey(key)
	if err != nil {
		return "", err
	}
	if k != domain.KeyResult {
		return c.localize(lang, k, nil)
	}
	if investment == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrAmountRequired, k)
	}
	return c.Result(lang, *investment)
}

// Result implements output.Catalog.
func (c *Catalog) Result(language domain.Language, investment decimal.Decimal) (string, error) {
	if investment.IsNegative() {
		return "", fmt.Errorf("%w: %s", domain.ErrNegativeAmount, investment)
	}
	profit := entities.CalculateProfit(investment, c.rounding)
	return c.localize(language, domain.KeyResult, resultData(profit))
}

// T implements output.Catalog.
func (c *Catalog) T(language, key string) string {
	if key == "" {
		return ""
	}
	lang := domain.MatchLanguage(language, c.defaultLanguage)
	msg, err := c.localize(lang, domain.MessageKey(key), nil)
	if err == nil {
		return msg
	}
	log.Printf("i18n: localize failed (key=%s, lang=%s): %v", key, lang, err)
	if lang != c.defaultLanguage {
		if msg, err := c.localize(c.defaultLanguage, domain.MessageKey(key), nil); err == nil {
			return msg
		}
	}
	return key
}

func (c *Catalog) localize(lang domain.Language, key domain.MessageKey, data map[string]any) (string, error) {
	localizer := i18n.NewLocalizer(c.bundle, lang.String())
	msg, tag, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{
		MessageID:    string(key),
		TemplateData: data,
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s/%s", domain.ErrUnknownMessage, lang, key)
		}
		return "", fmt.Errorf("localize %s/%s: %w", lang, key, err)
	}
	// The bundle matcher falls back to the default language silently.
	if base, _ := tag.Base(); base.String() != lang.String() {
		return "", fmt.Errorf("%w: %s has no catalog", domain.ErrUnknownLanguage, lang)
	}
	return msg, nil
}

func resultData(p entities.Profit) map[string]any {
	return map[string]any{
		"Amount":  amount.Format(p.Amount),
		"Daily":   amount.FormatFigure(p.Daily),
		"Weekly":  amount.FormatFigure(p.Weekly),
		"Monthly": amount.FormatFigure(p.Monthly),
	}
}
