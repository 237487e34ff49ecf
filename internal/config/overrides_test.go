package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCLIConfigOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides []string
		expected  map[string]any
		errMsg    string
	}{
		{
			name:      "empty",
			overrides: nil,
			expected:  map[string]any{},
		},
		{
			name:      "single override",
			overrides: []string{"lc.theme=nord"},
			expected:  map[string]any{"theme": "nord"},
		},
		{
			name:      "value containing equals",
			overrides: []string{"lc.addr=host=1"},
			expected:  map[string]any{"addr": "host=1"},
		},
		{
			name:      "last occurrence wins",
			overrides: []string{"lc.width=10", "lc.width=20"},
			expected:  map[string]any{"width": "20"},
		},
		{
			name:      "missing equals",
			overrides: []string{"lc.theme"},
			errMsg:    "invalid config override",
		},
		{
			name:      "wrong prefix",
			overrides: []string{"lw.theme=nord"},
			errMsg:    "must start with",
		},
		{
			name:      "empty key",
			overrides: []string{"lc.=x"},
			errMsg:    "empty config key",
		},
		{
			name:      "unknown key",
			overrides: []string{"lc.colour=red"},
			errMsg:    "unknown config key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCLIConfigOverrides(tt.overrides)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyCLIOverrides(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyCLIOverrides([]string{
		"lc.theme=dracula",
		"lc.atomic_save=true",
		"lc.max_depth=4",
		"lc.mode=web",
	})
	require.NoError(t, err)

	assert.Equal(t, "dracula", cfg.Theme)
	assert.True(t, cfg.AtomicSave)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.Equal(t, ModeWeb, cfg.Mode)
}

func TestApplyCLIOverridesRejectsBadValues(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorContains(t, cfg.ApplyCLIOverrides([]string{"lc.theme=neon"}), "unknown theme")
	assert.ErrorContains(t, cfg.ApplyCLIOverrides([]string{"lc.mode=gui"}), "unknown mode")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestKnownKeysSorted(t *testing.T) {
	keys := KnownKeys()
	require.Len(t, keys, len(knownKeys))
	assert.IsNonDecreasing(t, keys)
	assert.Contains(t, keys, "tab_width")
}
