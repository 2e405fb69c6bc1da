package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Data      DataConfig      `yaml:"data"`
	Corpus    CorpusConfig    `yaml:"corpus"`
	Tokenizer TokenizerConfig `yaml:"tokenizer"`
	Anki      AnkiConfig      `yaml:"anki"`
	Audio     AudioConfig     `yaml:"audio"`
	WorkList  WorkListConfig  `yaml:"worklist"`
	Database  DatabaseConfig  `yaml:"database"`
	LLM       LLMConfig       `yaml:"llm"`
	Shuffle   ShuffleConfig   `yaml:"shuffle"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DataConfig holds the locations of every input and output file.
type DataConfig struct {
	DeckFolder    string `yaml:"deck_folder"     env:"DATA_DECK_FOLDER"     env-default:"data/deck"`
	APKGPath      string `yaml:"apkg_path"       env:"DATA_APKG_PATH"       env-default:"data/deck.apkg"`
	DictformIndex string `yaml:"dictform_index"  env:"DATA_DICTFORM_INDEX"  env-default:"data/dictform_index.json"`
	GlossaryGlob  string `yaml:"glossary_glob"   env:"DATA_GLOSSARY_GLOB"   env-default:"data/jmdict/term_bank_*.json"`
	RTKKeywords   string `yaml:"rtk_keywords"    env:"DATA_RTK_KEYWORDS"    env-default:"data/rtk_keywords.csv"`
	ImageDir      string `yaml:"image_dir"       env:"DATA_IMAGE_DIR"       env-default:"data/images"`
	AudioDir      string `yaml:"audio_dir"       env:"DATA_AUDIO_DIR"       env-default:"data/audio"`
}

// CorpusConfig holds the note field positions of the sentence pack in the
// order kanji, english, audio. A list keeps an explicit 0 from being
// replaced by the default.
type CorpusConfig struct {
	Fields []int `yaml:"fields" env:"CORPUS_FIELDS" env-default:"0,2,3"`
}

// KanjiField is the field holding the Japanese sentence.
func (c CorpusConfig) KanjiField() int { return c.Fields[0] }

// EnglishField is the field holding the translation.
func (c CorpusConfig) EnglishField() int { return c.Fields[1] }

// AudioField is the field holding the sentence audio references.
func (c CorpusConfig) AudioField() int { return c.Fields[2] }

// TokenizerConfig selects the morphological analyzer.
type TokenizerConfig struct {
	Backend       string   `yaml:"backend"        env:"TOKENIZER_BACKEND"        env-default:"kagome"`
	KagomeDict    string   `yaml:"kagome_dict"    env:"TOKENIZER_KAGOME_DICT"    env-default:"ipa"`
	SudachiBinary string   `yaml:"sudachi_binary" env:"TOKENIZER_SUDACHI_BINARY" env-default:"sudachi"`
	SudachiArgs   []string `yaml:"sudachi_args"   env:"TOKENIZER_SUDACHI_ARGS"   env-separator:" "`
	Workers       int      `yaml:"workers"        env:"TOKENIZER_WORKERS"        env-default:"4"`
}

// AnkiConfig holds AnkiConnect and note type settings.
type AnkiConfig struct {
	URL         string        `yaml:"url"          env:"ANKI_URL"          env-default:"http://127.0.0.1:8765"`
	Version     int           `yaml:"version"      env:"ANKI_VERSION"      env-default:"6"`
	Timeout     time.Duration `yaml:"timeout"      env:"ANKI_TIMEOUT"      env-default:"30s"`
	Deck        string        `yaml:"deck"         env:"ANKI_DECK"         env-default:"Core2.3k Version 3"`
	Model       string        `yaml:"model"        env:"ANKI_MODEL"        env-default:"core2.3k-anime-card"`
	ClozeDeck   string        `yaml:"cloze_deck"   env:"ANKI_CLOZE_DECK"   env-default:"Clozes"`
	ClozeModel  string        `yaml:"cloze_model"  env:"ANKI_CLOZE_MODEL"  env-default:"ClozeCard"`
	MatureQuery string        `yaml:"mature_query" env:"ANKI_MATURE_QUERY" env-default:"-is:suspended prop:ivl>21"`
}

// AudioConfig configures the term audio provider chain. Providers are tried
// in order: jpod101 first unless disabled, then Providers.
type AudioConfig struct {
	Timeout        time.Duration      `yaml:"timeout"         env:"AUDIO_TIMEOUT"         env-default:"10s"`
	DisableJPod101 bool               `yaml:"disable_jpod101" env:"AUDIO_DISABLE_JPOD101"`
	Providers      []URLTemplateAudio `yaml:"providers"`
}

// JPod101Enabled reports whether jpod101 heads the provider chain.
func (a AudioConfig) JPod101Enabled() bool {
	return !a.DisableJPod101
}

// URLTemplateAudio is an extra provider whose request URL is a template with
// {term} and {reading} placeholders.
type URLTemplateAudio struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
	// Sentinels are sha256 hex digests of placeholder clips.
	Sentinels []string `yaml:"sentinels"`
}

// WorkListConfig selects where work lists are persisted.
type WorkListConfig struct {
	Driver    string `yaml:"driver"     env:"WORKLIST_DRIVER"     env-default:"csv"`
	MiningCSV string `yaml:"mining_csv" env:"WORKLIST_MINING_CSV" env-default:"data/input.csv"`
	ClozeCSV  string `yaml:"cloze_csv"  env:"WORKLIST_CLOZE_CSV"  env-default:"data/input_cloze.csv"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the
// postgres work-list driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LLMConfig holds sentence generator settings.
type LLMConfig struct {
	APIKey           string `yaml:"api_key"            env:"ANTHROPIC_API_KEY"`
	Model            string `yaml:"model"              env:"LLM_MODEL"              env-default:"claude-opus-4-6"`
	SentencesPerTerm int    `yaml:"sentences_per_term" env:"LLM_SENTENCES_PER_TERM" env-default:"3"`
}

// ShuffleConfig bounds a shuffle run.
type ShuffleConfig struct {
	Limit int `yaml:"limit" env:"SHUFFLE_LIMIT" env-default:"25"`
}
