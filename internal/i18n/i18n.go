// Package i18n holds the UI string resources.
//
// Messages live in embedded TOML files, one per language. Lookups never fail:
// a missing message renders as its ID.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localesFS embed.FS

// Message IDs.
const (
	EnterItem        = "enter_item"
	InputPlaceholder = "input_placeholder"
	ButtonAdd        = "button_add"
	ButtonFinish     = "button_finish"
	ResultTitle      = "result_title"
	HelpFocus        = "help_focus"
	HelpBack         = "help_back"
	HelpQuit         = "help_quit"
	HelpSubmit       = "help_submit"
	HelpScroll       = "help_scroll"
)

var defaultLanguage = language.English

// Catalog resolves message IDs for one language.
type Catalog struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// Load builds a catalog for lang (a BCP 47 tag such as "en" or "id-ID").
// Unsupported or empty tags fall back to English.
func Load(lang string) (*Catalog, error) {
	bundle := goi18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localesFS, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("i18n: list locales: %w", err)
	}
	for _, f := range files {
		data, err := localesFS.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", f, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(f)); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", f, err)
		}
	}

	tag := matchTag(bundle.LanguageTags(), lang)
	return &Catalog{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// MustLoad is Load for the embedded, known-good resources.
func MustLoad(lang string) *Catalog {
	c, err := Load(lang)
	if err != nil {
		panic(err)
	}
	return c
}

func matchTag(supported []language.Tag, lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return defaultLanguage
	}
	want, err := language.Parse(lang)
	if err != nil {
		return defaultLanguage
	}
	// Put the default first so the matcher falls back to it.
	tags := []language.Tag{defaultLanguage}
	for _, t := range supported {
		if t != defaultLanguage {
			tags = append(tags, t)
		}
	}
	_, idx, conf := language.NewMatcher(tags).Match(want)
	if conf == language.No {
		return defaultLanguage
	}
	return tags[idx]
}

// Language is the resolved language tag.
func (c *Catalog) Language() language.Tag {
	if c == nil {
		return defaultLanguage
	}
	return c.tag
}

// T returns the message for id.
func (c *Catalog) T(id string) string {
	if c == nil || c.localizer == nil {
		return id
	}
	s, err := c.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil || s == "" {
		return id
	}
	return s
}
