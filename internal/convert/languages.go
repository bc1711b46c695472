package convert

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedLanguage is returned when a catalog declares or references
// an ISO 639-2 code the resolver does not know. Language tags are
// schema-significant downstream, so this aborts the whole conversion
// instead of guessing.
var ErrUnsupportedLanguage = errors.New("unsupported ISO 639-2 language code")

// languageRegions maps ISO 639-2 codes to language-region tags. Both the
// bibliographic and terminological variants are listed where they differ
// (catalogs use either, e.g. "ger" and "deu" for German).
var languageRegions = map[string]string{
	// Germanic
	"deu": "de-DE", "ger": "de-DE",
	"eng": "en-GB",
	"nld": "nl-NL", "dut": "nl-NL",
	"swe": "sv-SE",
	"nor": "no-NO",
	"dan": "da-DK",
	"isl": "is-IS", "ice": "is-IS",

	// Romance
	"fra": "fr-FR", "fre": "fr-FR",
	"ita": "it-IT",
	"spa": "es-ES",
	"por": "pt-PT",
	"ron": "ro-RO", "rum": "ro-RO",

	// Slavic
	"rus": "ru-RU",
	"pol": "pl-PL",
	"ces": "cs-CZ", "cze": "cs-CZ",
	"slk": "sk-SK", "slo": "sk-SK",
	"ukr": "uk-UA",
	"bul": "bg-BG",

	// Asian
	"jpn": "ja-JP",
	"zho": "zh-CN", "chi": "zh-CN",
	"kor": "ko-KR",
	"tha": "th-TH",
	"vie": "vi-VN",

	// Other European
	"ell": "el-GR", "gre": "el-GR",
	"hun": "hu-HU",
	"fin": "fi-FI",
	"tur": "tr-TR",

	// Middle Eastern
	"ara": "ar-SA",
	"heb": "he-IL",
	"fas": "fa-IR", "per": "fa-IR",

	// South Asian
	"hin": "hi-IN",
	"ben": "bn-BD",
	"tam": "ta-IN",

	// Others
	"swa": "sw-KE",
	"ind": "id-ID",
	"msa": "ms-MY", "may": "ms-MY",
	"hye": "hy-AM", "arm": "hy-AM",
	"kat": "ka-GE", "geo": "ka-GE",
	"eus": "eu-ES", "baq": "eu-ES",
	"slv": "sl-SI",
	"mri": "mi-NZ", "mao": "mi-NZ",
	"mya": "my-MM", "bur": "my-MM",
	"mkd": "mk-MK", "mac": "mk-MK",
	"cym": "cy-GB", "wel": "cy-GB",
	"sqi": "sq-AL", "alb": "sq-AL",
}

// ResolveLanguage converts an ISO 639-2 code (bibliographic or
// terminological) to its language-region tag, e.g. "ger" -> "de-DE".
// An empty code resolves to the empty tag. A non-empty code outside the
// table is a hard failure, never a soft skip.
func ResolveLanguage(code string) (string, error) {
	if code == "" {
		return "", nil
	}
	tag, ok := languageRegions[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return tag, nil
}
