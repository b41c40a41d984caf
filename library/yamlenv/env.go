package yamlenv

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var reference = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// Env — значение конфигурации, которое может ссылаться на переменную окружения.
// Поддерживаются формы ${NAME} и ${NAME:-default}.
type Env[T any] struct {
	Value T
	Raw   string
}

func (e *Env[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("yamlenv: line %d: expected scalar value", node.Line)
	}

	e.Raw = node.Value
	resolved := Expand(node.Value)

	if p, ok := any(&e.Value).(*string); ok {
		*p = resolved
		return nil
	}

	if strings.TrimSpace(resolved) == "" {
		var zero T
		e.Value = zero
		return nil
	}

	plain := yaml.Node{Kind: yaml.ScalarNode, Value: resolved}
	if err := plain.Decode(&e.Value); err != nil {
		return fmt.Errorf("yamlenv: line %d: decode %q: %w", node.Line, resolved, err)
	}

	return nil
}

// Get возвращает значение или нулевое значение типа, если ключ отсутствовал в файле.
func (e *Env[T]) Get() T {
	if e == nil {
		var zero T
		return zero
	}
	return e.Value
}

// Expand подставляет переменные окружения в строку.
func Expand(s string) string {
	return reference.ReplaceAllStringFunc(s, func(m string) string {
		parts := reference.FindStringSubmatch(m)
		if v, ok := os.LookupEnv(parts[1]); ok && v != "" {
			return v
		}
		return parts[3]
	})
}
