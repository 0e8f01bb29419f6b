package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thaipbs-mis/context-engineering-intro/pkg/environment"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{" PROD ", environment.Production},
		{"staging", environment.Staging},
		{"stage", environment.Staging},
		{"development", environment.Development},
		{"dev", environment.Development},
		{"", environment.Development},
		{"qa", environment.Development},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, environment.Parse(tt.in))
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Production.IsDevelopment())
	assert.True(t, environment.Staging.IsStaging())
	assert.True(t, environment.Development.IsDevelopment())
	assert.Equal(t, "staging", environment.Staging.String())
}
