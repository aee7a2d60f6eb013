package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env:"ENV" env-default:"local"`
	Listen struct {
		Bind string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port string `yaml:"port" env:"PORT" env-default:"8000"`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		URL      string `yaml:"url" env:"DATABASE_URL" env-default:""`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:"admin"`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:"pass"`
		Database string `yaml:"database" env:"DATABASE_NAME" env-default:"storybook"`
	} `yaml:"mongo"`
	Cors struct {
		Origins []string `yaml:"origins" env:"CORS_ORIGINS" env-separator:"," env-default:"*"`
	} `yaml:"cors"`
	Stories struct {
		DefaultLimit int `yaml:"default_limit" env:"STORIES_DEFAULT_LIMIT" env-default:"20"`
		MaxLimit     int `yaml:"max_limit" env:"STORIES_MAX_LIMIT" env-default:"100"`
	} `yaml:"stories"`
}

// MongoURI returns the configured connection string, building one from the
// host settings when no url is given.
func (c *Config) MongoURI() string {
	if c.Mongo.URL != "" {
		return c.Mongo.URL
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s",
		c.Mongo.User, c.Mongo.Password,
		c.Mongo.Host, c.Mongo.Port)
}

var instance *Config
var once sync.Once

func GetConfig(path string) (*Config, error) {
	var err error
	once.Do(func() {
		instance, err = Load(path)
	})
	return instance, err
}

// Load reads the yaml file at path with environment overrides. A missing file
// is not an error: the configuration then comes from the environment only.
func Load(path string) (*Config, error) {
	conf := &Config{}
	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(conf)
	} else {
		err = cleanenv.ReadConfig(path, conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("config: %s; %s", err, desc)
	}
	return conf, nil
}

func MustLoad(path string) *Config {
	conf, err := GetConfig(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return conf
}
