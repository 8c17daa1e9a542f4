package ai_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/infra/ai"
)

func TestGenerateOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer test-key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[
			{"message":{"role":"assistant","content":"option one"}},
			{"message":{"role":"assistant","content":"option two"}},
			{"message":{"role":"assistant","content":"option three"}}
		]}`))
	}))
	defer srv.Close()

	client := ai.New(srv.URL, "test-key")
	result := client.Generate(context.Background(), "propose fixes", 3)

	gt.V(t, result.Status).Equal(interfaces.GenOK)
	gt.A(t, result.Texts).Length(3)
	gt.V(t, result.Texts[0]).Equal("option one")
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := ai.New(srv.URL, "test-key")
	result := client.Generate(context.Background(), "propose fixes", 3)

	gt.V(t, result.Status).Equal(interfaces.GenFailed)
	gt.V(t, result.Err).NotNil()
}

func TestGenerateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	client := ai.New(srv.URL, "test-key")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	result := client.Generate(ctx, "propose fixes", 3)

	gt.V(t, result.Status).Equal(interfaces.GenTimedOut)
}

func TestGenerateMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := ai.New(srv.URL, "test-key")
	result := client.Generate(context.Background(), "propose fixes", 3)

	gt.V(t, result.Status).Equal(interfaces.GenFailed)
}
