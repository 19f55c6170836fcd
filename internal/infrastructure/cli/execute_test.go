package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doeshing/shaid/internal/domain"
)

func TestReportErrorWording(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "no answer",
			err:  &domain.DispatchError{Kind: domain.ErrNetwork, Provider: domain.ProviderOpenAI},
			want: "no provider answer",
		},
		{
			name: "unusable answer",
			err:  &domain.GenerationError{Stage: "extract command", Err: domain.ErrNoCommandExtracted},
			want: "the provider answered",
		},
		{
			name: "unknown",
			err:  errors.New("boom"),
			want: "shaid: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reportError(&out, domain.Classify(tt.err), tt.err)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}
