package database

import (
	"testing"

	"petcare/config"

	"github.com/stretchr/testify/assert"
)

func TestNew_RejectsIncompleteConfig(t *testing.T) {
	tests := []struct {
		name   string
		config config.Config
	}{
		{
			name:   "empty host",
			config: config.Config{DatabasePort: 5432, DatabaseName: "petcare", DatabaseUser: "postgres"},
		},
		{
			name:   "empty database name",
			config: config.Config{DatabaseHost: "localhost", DatabasePort: 5432, DatabaseUser: "postgres"},
		},
		{
			name:   "empty user",
			config: config.Config{DatabaseHost: "localhost", DatabasePort: 5432, DatabaseName: "petcare"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.config)
			assert.Error(t, err)
		})
	}
}
