package ai

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/doeshing/shaid/internal/domain"
)

// classifyError maps an SDK failure onto the dispatch taxonomy.
func classifyError(kind domain.ProviderKind, err error) error {
	if err == nil {
		return nil
	}
	var dispatchErr *domain.DispatchError
	if errors.As(err, &dispatchErr) {
		return err
	}
	return &domain.DispatchError{Kind: errorKind(err), Provider: kind, Err: err}
}

func errorKind(err error) error {
	if status, ok := statusCode(err); ok {
		return kindForStatus(status)
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.ErrNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.ErrNetwork
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return domain.ErrNetwork
	}
	return domain.ErrUnavailable
}

func statusCode(err error) (int, bool) {
	var openaiAPIErr *openai.APIError
	if errors.As(err, &openaiAPIErr) && openaiAPIErr.HTTPStatusCode > 0 {
		return openaiAPIErr.HTTPStatusCode, true
	}
	var openaiReqErr *openai.RequestError
	if errors.As(err, &openaiReqErr) && openaiReqErr.HTTPStatusCode > 0 {
		return openaiReqErr.HTTPStatusCode, true
	}
	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) && anthropicErr.StatusCode > 0 {
		return anthropicErr.StatusCode, true
	}
	var genaiErr genai.APIError
	if errors.As(err, &genaiErr) && genaiErr.Code > 0 {
		return genaiErr.Code, true
	}
	return 0, false
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return domain.ErrAuth
	case status == http.StatusRequestTimeout:
		return domain.ErrNetwork
	default:
		return domain.ErrUnavailable
	}
}
