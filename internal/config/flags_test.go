package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", errorMsg: "port number is a positive integer"},
		{name: "invalid IP address", input: "invalid.host:8080", errorMsg: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-u", "http://queue.local",
		"-api-prefix", "/q",
		"-activity", "sale",
		"-user", "u1",
		"-device", "d1",
		"-log-file", "client.log",
		"-max-retries", "4",
		"-retry-base-delay", "250ms",
		"-poll-interval", "1500ms",
		"-request-timeout", "5s",
		"-d", "file.db",
		"-release-interval", "2s",
		"-config", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "http://queue.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/q", cfg.Adapter.APIPrefix)
	assert.Equal(t, "sale", cfg.App.ActivityID)
	assert.Equal(t, "u1", cfg.App.UserIdentifier)
	assert.Equal(t, "d1", cfg.App.DeviceIdentifier)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, 4, cfg.Queue.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Queue.RetryBaseDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Queue.DefaultPollInterval)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Workers.ReleaseInterval)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgsLeavesZeroValues(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-nope"})
	require.Error(t, err)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nohost"})
	require.Error(t, err)
}
