package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

const (
	DefaultThreadsLimit   = 10
	DefaultRepliesPreview = 3
	DefaultMaxTextLen     = 10_000
)

type Config struct {
	Public Public
}

type Public struct {
	Http           Http `yaml:"http"`
	Log            Log  `yaml:"log"`
	Cors           Cors `yaml:"cors"`
	SecureCookies  bool `yaml:"secure_cookies"`                                // enables HSTS header
	ThreadsLimit   int  `yaml:"threads_limit" validate:"gte=0"`                // threads returned by board listing
	RepliesPreview int  `yaml:"replies_preview" validate:"gte=0"`              // replies shown per thread in board listing
	MaxTextLen     int  `yaml:"max_text_len" validate:"gte=0"`                 // in runes
	BcryptCost     int  `yaml:"bcrypt_cost" validate:"omitempty,gte=4,lte=31"` // cost of delete password hashing
}

type Http struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type Log struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
}

type Cors struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the configuration used when a field is left out of public.yaml.
func Default() Public {
	return Public{
		Http: Http{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Log:            Log{Level: "info"},
		Cors:           Cors{AllowedOrigins: []string{"*"}},
		ThreadsLimit:   DefaultThreadsLimit,
		RepliesPreview: DefaultRepliesPreview,
		MaxTextLen:     DefaultMaxTextLen,
		BcryptCost:     bcrypt.DefaultCost,
	}
}

func (p *Public) fillDefaults() {
	def := Default()
	if p.Http.Addr == "" {
		p.Http.Addr = def.Http.Addr
	}
	if p.Http.ReadTimeout == 0 {
		p.Http.ReadTimeout = def.Http.ReadTimeout
	}
	if p.Http.WriteTimeout == 0 {
		p.Http.WriteTimeout = def.Http.WriteTimeout
	}
	if p.Http.ShutdownTimeout == 0 {
		p.Http.ShutdownTimeout = def.Http.ShutdownTimeout
	}
	if p.Log.Level == "" {
		p.Log.Level = def.Log.Level
	}
	if len(p.Cors.AllowedOrigins) == 0 {
		p.Cors.AllowedOrigins = def.Cors.AllowedOrigins
	}
	if p.ThreadsLimit == 0 {
		p.ThreadsLimit = def.ThreadsLimit
	}
	if p.RepliesPreview == 0 {
		p.RepliesPreview = def.RepliesPreview
	}
	if p.MaxTextLen == 0 {
		p.MaxTextLen = def.MaxTextLen
	}
	if p.BcryptCost == 0 {
		p.BcryptCost = def.BcryptCost
	}
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.UnmarshalStrict(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

// MustLoad reads public.yaml from configFolder. PORT from the environment
// overrides the listen port.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&public); err != nil {
		panic("invalid config: " + err.Error())
	}
	public.fillDefaults()

	if port := os.Getenv("PORT"); port != "" {
		public.Http.Addr = ":" + port
	}

	return &Config{Public: public}
}
