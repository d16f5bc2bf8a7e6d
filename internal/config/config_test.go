package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_USER", "sendit")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "sendit")
	t.Setenv("SESSION_SECRET", "topsecret")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("REDIS_PASS", "")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("IS_PROD", "true")

	c := LoadConfig()
	require.NotNil(t, c)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "sendit", c.DBUser)
	assert.Equal(t, "hunter2", c.DBPassword)
	assert.Equal(t, "127.0.0.1", c.DBHost)
	assert.Equal(t, "3306", c.DBPort)
	assert.Equal(t, "sendit", c.DBName)
	assert.Equal(t, "topsecret", c.SessionSecret)
	assert.Equal(t, "127.0.0.1:6379", c.RedisAddr)
	assert.Equal(t, 2, c.RedisDB)
	assert.True(t, c.IsProd)
}

func TestDSN(t *testing.T) {
	c := &Config{
		DBUser:     "sendit",
		DBPassword: "hunter2",
		DBHost:     "127.0.0.1",
		DBPort:     "3306",
		DBName:     "sendit",
	}
	assert.Equal(t, "sendit:hunter2@tcp(127.0.0.1:3306)/sendit?parseTime=true", c.DSN())
}

func TestIsProdDefaultsFalse(t *testing.T) {
	t.Setenv("IS_PROD", "")
	c := LoadConfig()
	assert.False(t, c.IsProd)
}
