package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "", want: LevelInfo},
		{in: "debug", want: LevelDebug},
		{in: " WARN ", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "verbose", want: LevelInfo, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "warn", LevelWarn.String())
}

func TestLevelGate(t *testing.T) {
	var lines []string
	prev := Logf
	SetLogger(func(format string, v ...any) { lines = append(lines, fmt.Sprintf(format, v...)) })
	t.Cleanup(func() {
		Logf = prev
		SetLevel(LevelInfo)
	})

	SetLevel(LevelWarn)
	Debugf("d %d", 1)
	Infof("i %d", 2)
	Warnf("w %d", 3)
	Errorf("e %d", 4)

	assert.Equal(t, []string{"WARN w 3", "ERROR e 4"}, lines)
}
