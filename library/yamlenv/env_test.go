package yamlenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Port   *Env[int]    `yaml:"port"`
	Name   *Env[string] `yaml:"name"`
	Mock   *Env[bool]   `yaml:"mock"`
	Absent *Env[string] `yaml:"absent"`
}

func TestEnv_ResolvesEnvironment(t *testing.T) {
	t.Setenv("HR_TEST_PORT", "9090")
	t.Setenv("HR_TEST_MOCK", "true")

	var s sample
	err := yaml.Unmarshal([]byte(`
port: ${HR_TEST_PORT}
name: "${HR_TEST_NAME:-hr-employees}"
mock: ${HR_TEST_MOCK:-false}
`), &s)
	require.NoError(t, err)

	assert.Equal(t, 9090, s.Port.Get())
	assert.Equal(t, "hr-employees", s.Name.Get())
	assert.True(t, s.Mock.Get())
	assert.Equal(t, "", s.Absent.Get())
	assert.Equal(t, "${HR_TEST_PORT}", s.Port.Raw)
}

func TestEnv_Literal(t *testing.T) {
	var s sample
	require.NoError(t, yaml.Unmarshal([]byte("port: 8080\nname: plain\n"), &s))

	assert.Equal(t, 8080, s.Port.Get())
	assert.Equal(t, "plain", s.Name.Get())
}

func TestEnv_UnsetWithoutDefault(t *testing.T) {
	var s sample
	require.NoError(t, yaml.Unmarshal([]byte("port: ${HR_TEST_UNSET_PORT}\n"), &s))

	assert.Equal(t, 0, s.Port.Get())
}

func TestEnv_InvalidValue(t *testing.T) {
	var s sample
	err := yaml.Unmarshal([]byte("port: not-a-number\n"), &s)

	require.Error(t, err)
}
