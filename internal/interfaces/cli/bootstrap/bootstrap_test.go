package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGinMode(t *testing.T) {
	tests := map[string]string{
		"production":  "release",
		"prod":        "release",
		"release":     "release",
		"test":        "test",
		"testing":     "test",
		"development": "debug",
		"":            "debug",
		"staging":     "debug",
	}
	for env, want := range tests {
		assert.Equal(t, want, GinMode(env), "env %q", env)
	}
}
