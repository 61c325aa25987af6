package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate flag and value",
			args:    []string{"-u", "http://localhost:8080", "-x", "ignored"},
			allowed: []string{"-u"},
			want:    []string{"-u", "http://localhost:8080"},
		},
		{
			name:    "equals form",
			args:    []string{"--api-url=http://h", "--other=1"},
			allowed: []string{"--api-url"},
			want:    []string{"--api-url=http://h"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-t", "-u", "http://h"},
			allowed: []string{"-t", "-u"},
			want:    []string{"-t", "-u", "http://h"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "b"},
			allowed: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
