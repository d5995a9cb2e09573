package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, "10/01/24 08:30", FormatDateTime(ts))
}

func TestFormatDateTimePtr(t *testing.T) {
	assert.Nil(t, FormatDateTimePtr(nil))

	ts := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	got := FormatDateTimePtr(&ts)
	require.NotNil(t, got)
	assert.Equal(t, "15/03/24 00:00", *got)
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "rfc3339",
			value: "2024-01-10T08:00:00Z",
			want:  time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
		},
		{
			name:  "display layout",
			value: "10/01/24 08:00",
			want:  time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
		},
		{name: "garbage", value: "not a date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}
