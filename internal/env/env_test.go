package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	t.Setenv("ENV_TEST_B", "b")

	assert.Equal(t, "b", First("ENV_TEST_A", "ENV_TEST_B"))
	assert.Empty(t, First("ENV_TEST_A"))
}

func TestFirstOrDefault(t *testing.T) {
	assert.Equal(t, "def", FirstOrDefault("def", "ENV_TEST_A"))

	t.Setenv("ENV_TEST_A", "a")
	assert.Equal(t, "a", FirstOrDefault("def", "ENV_TEST_A"))
}

func TestIsTruthy(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"YES":   true,
		"0":     false,
		"false": false,
		"":      false,
	}

	for value, exp := range cases {
		t.Setenv("ENV_TEST_TRUTHY", value)
		assert.Equal(t, exp, IsTruthy("ENV_TEST_TRUTHY"), "value: %q", value)
	}
}

func TestIsCI(t *testing.T) {
	for _, name := range []string{"CI", "BUILD_NUMBER", "RUN_ID"} {
		t.Setenv(name, "")
	}
	assert.False(t, IsCI())

	t.Setenv("CI", "true")
	assert.True(t, IsCI())
}
