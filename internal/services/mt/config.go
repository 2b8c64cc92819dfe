package mt

import "time"

// Service ids shipped with translating.space.
const (
	ServiceDummy          = "dummy"
	ServiceMemory         = "weblate"
	ServiceMyMemory       = "mymemory"
	ServiceLibreTranslate = "libretranslate"
	ServiceGemini         = "gemini"
)

// Config selects and configures machine translation services.
type Config struct {
	Enabled  bool          `env:"MT_ENABLED" envDefault:"true"`
	Services []string      `env:"MT_SERVICES" envSeparator:"," envDefault:"dummy,weblate"`
	CacheTTL time.Duration `env:"MT_CACHE_TTL" envDefault:"24h"`

	MyMemoryURL   string `env:"MT_MYMEMORY_URL" envDefault:"https://api.mymemory.translated.net"`
	MyMemoryEmail string `env:"MT_MYMEMORY_EMAIL"`

	LibreTranslateURL string `env:"MT_LIBRETRANSLATE_URL" envDefault:"https://libretranslate.com"`
	LibreTranslateKey string `env:"MT_LIBRETRANSLATE_KEY"`

	GeminiAPIKey string `env:"MT_GEMINI_API_KEY"`
	GeminiModel  string `env:"MT_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}
