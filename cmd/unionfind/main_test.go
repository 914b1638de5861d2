package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	cases := []struct {
		file string
		run  func(string, io.Writer) error
		want string
	}{
		{"acquaintance_six.yaml", runAcquaintance, "20190301"},
		{"acquaintance_four.yaml", runAcquaintance, "3"},
		{"mst_three_cities.yaml", runMST, "6"},
		{"mst_disconnected.yaml", runMST, "-1"},
		{"malware_quarantine.yaml", runMalware, "3"},
		{"malware_removal.yaml", runMalware, "1"},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, tc.run(filepath.Join("testdata", tc.file), &out))
			assert.Equal(t, tc.want, strings.TrimSpace(out.String()))
		})
	}
}

func TestScenarioFailures(t *testing.T) {
	var out bytes.Buffer

	err := runMST(filepath.Join("testdata", "mst_wrong_expect.yaml"), &out)
	assert.ErrorIs(t, err, errMismatch)
	assert.Equal(t, "6", strings.TrimSpace(out.String()), "answer is printed before the check")

	err = runMST(filepath.Join("testdata", "unknown_key.yaml"), io.Discard)
	assert.Error(t, err, "strict decoding rejects unknown keys")

	err = runAcquaintance(filepath.Join("testdata", "missing.yaml"), io.Discard)
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	cfg, err := configFromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, logging.INFO, cfg.LogLevel)
	assert.Equal(t, int64(1), cfg.Seed)

	cfg, err = configFromEnv(env(map[string]string{envLogLevel: "DEBUG", envSeed: "99"}))
	require.NoError(t, err)
	assert.Equal(t, logging.DEBUG, cfg.LogLevel)
	assert.Equal(t, int64(99), cfg.Seed)

	_, err = configFromEnv(env(map[string]string{envLogLevel: "LOUD"}))
	assert.Error(t, err)

	_, err = configFromEnv(env(map[string]string{envSeed: "abc"}))
	assert.Error(t, err)
}

func TestStress(t *testing.T) {
	rep, err := runStress(1000, 5000, 7)
	require.NoError(t, err)
	assert.Equal(t, 1000-rep.Merges, rep.Sets)
	assert.LessOrEqual(t, rep.Largest, 1000)
	assert.Positive(t, rep.Largest)

	again, err := runStress(1000, 5000, 7)
	require.NoError(t, err)
	assert.Equal(t, rep, again, "same seed, same outcome")

	var out bytes.Buffer
	require.NoError(t, stress(2000, 10, 1, &out))
	assert.Contains(t, out.String(), "2,000 elements")

	_, err = runStress(0, 1, 1)
	assert.Error(t, err)
}
