package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/fact-data/factstock_backend/internal/platform/config"
)

func TestParseGradeMap(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected domain.GradeMap
		wantErr  bool
	}{
		{
			name:     "standing recipe",
			raw:      "5:1,6:1,7:2",
			expected: domain.GradeMap{"5": "1", "6": "1", "7": "2"},
		},
		{
			name:     "whitespace tolerated",
			raw:      " 5 : 1 , 6:1 ",
			expected: domain.GradeMap{"5": "1", "6": "1"},
		},
		{
			name:     "trailing comma tolerated",
			raw:      "5:1,",
			expected: domain.GradeMap{"5": "1"},
		},
		{
			name:    "missing input grade",
			raw:     "5:",
			wantErr: true,
		},
		{
			name:    "no separator",
			raw:     "5-1",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gm, err := config.ParseGradeMap(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, gm)
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, domain.GradeMap{"5": "1", "6": "1", "7": "2"}, cfg.GradeMap)
	assert.Contains(t, cfg.CORSAllowOrigins, "http://localhost:3000")
}

func TestLoadConfig_InvalidGradeMap(t *testing.T) {
	t.Setenv("GRADE_MAP", "not-a-map")

	_, err := config.LoadConfig()
	require.Error(t, err)
}
