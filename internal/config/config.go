package config

import (
	"github.com/Artexxx/HR-Employees/library/pg"
	"github.com/Artexxx/HR-Employees/library/yamlenv"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	UserAPI ApiConfig     `yaml:"userAPI"`
}

type AppConfig struct {
	// UseMockData заменяет сохранённые данные сгенерированными при старте.
	UseMockData *yamlenv.Env[bool]   `yaml:"use_mock_data"`
	MockRecords *yamlenv.Env[int]    `yaml:"mock_records"`
	DateLayout  *yamlenv.Env[string] `yaml:"date_layout"`
	LogLevel    *yamlenv.Env[string] `yaml:"log_level"`
}

// StorageConfig — локальное key-value хранилище коллекции сотрудников.
// Driver: memory | file | sqlite | postgres.
type StorageConfig struct {
	Driver   *yamlenv.Env[string] `yaml:"driver"`
	Path     *yamlenv.Env[string] `yaml:"path"`
	Postgres pg.PostgresConfig    `yaml:"postgres"`
}

type KafkaConfig struct {
	Bootstrap *yamlenv.Env[string] `yaml:"bootstrap"`
	Topic     *yamlenv.Env[string] `yaml:"topic"`
	Source    *yamlenv.Env[string] `yaml:"source"`
}

type ApiConfig struct {
	Port *yamlenv.Env[int] `yaml:"port"`
}

const (
	DefaultPort        = 8080
	DefaultDateLayout  = "1/2/2006"
	DefaultMockRecords = 120
	DefaultTopic       = "hr.employees"
	DefaultSource      = "hr-employees"
)

func (c *Config) Port() int {
	if p := c.UserAPI.Port.Get(); p > 0 {
		return p
	}
	return DefaultPort
}

func (c *Config) DateLayout() string {
	if l := c.App.DateLayout.Get(); l != "" {
		return l
	}
	return DefaultDateLayout
}

func (c *Config) MockRecords() int {
	if n := c.App.MockRecords.Get(); n > 0 {
		return n
	}
	return DefaultMockRecords
}

func (c *Config) StorageDriver() string {
	if d := c.Storage.Driver.Get(); d != "" {
		return d
	}
	return "memory"
}

func (c *Config) KafkaTopic() string {
	if t := c.Kafka.Topic.Get(); t != "" {
		return t
	}
	return DefaultTopic
}

func (c *Config) KafkaSource() string {
	if s := c.Kafka.Source.Get(); s != "" {
		return s
	}
	return DefaultSource
}
