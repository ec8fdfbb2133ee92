package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value kept",
			args:         []string{"-d", "reg.db", "-x", "junk"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "reg.db"},
		},
		{
			name:         "equals form kept",
			args:         []string{"--config=conf.json", "-v"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=conf.json"},
		},
		{
			name:         "flag followed by another flag keeps only the flag",
			args:         []string{"-n", "-d", "reg.db"},
			allowedFlags: []string{"-n"},
			want:         []string{"-n"},
		},
		{
			name:         "nothing allowed",
			args:         []string{"-a", "b"},
			allowedFlags: []string{"-z"},
			want:         []string{},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"app", "-c", "conf.json", "-d", "reg.db"}
	assert.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"app", "-config=other.json"}
	assert.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"app", "-d", "reg.db"}
	assert.Equal(t, "", JsonConfigFlags())
}
