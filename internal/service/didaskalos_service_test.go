package service

import (
	"context"
	"testing"

	"github.com/heversonalves/canon/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDidaskalosQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		stage       string
		wantWarning bool
	}{
		{
			name:        "application question before interpretation is done",
			query:       "Como aplico isso no sermão de domingo?",
			stage:       "observation",
			wantWarning: true,
		},
		{
			name:        "preaching question at grammar stage",
			query:       "Posso pregar este texto?",
			stage:       "grammar",
			wantWarning: true,
		},
		{
			name:        "application question at theology stage",
			query:       "Qual a aplicação deste texto?",
			stage:       "theology",
			wantWarning: false,
		},
		{
			name:        "method question at early stage",
			query:       "O que devo observar na estrutura?",
			stage:       "observation",
			wantWarning: false,
		},
		{
			name:        "unknown stage treated as observation",
			query:       "Ideias para o sermão",
			stage:       "exegesis",
			wantWarning: true,
		},
	}

	svc := NewDidaskalosService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Query(context.Background(), &dto.DidaskalosQueryRequest{
				Query: tt.query,
				Context: dto.DidaskalosContext{
					Book:    "Romans",
					Chapter: 3,
					Stage:   tt.stage,
				},
			})
			require.NoError(t, err)

			assert.NotEmpty(t, resp.Answer)
			assert.Contains(t, resp.Answer, "Romans")
			if tt.wantWarning {
				assert.NotEmpty(t, resp.Warning)
			} else {
				assert.Empty(t, resp.Warning)
			}
		})
	}
}
