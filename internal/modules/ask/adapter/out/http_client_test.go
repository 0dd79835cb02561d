package out

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAskSendsRequestAndParsesResponse(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/ask" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"answer": "A stack is LIFO.",
			"sources": [{"doc_name": "DSA_Module_2.pdf", "page": 4, "relevance": 0.91, "text": "A stack..."}]
		}`))
	}))
	defer server.Close()

	client := NewHTTPAnswerClient(server.URL, 5*time.Second)
	answer, err := client.Ask(context.Background(), "what is a stack?", "COMPS", "Sem-3", "jwt-abc")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}

	if gotAuth != "Bearer jwt-abc" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotBody["question"] != "what is a stack?" || gotBody["course"] != "COMPS" || gotBody["semester"] != "Sem-3" {
		t.Errorf("request body = %v", gotBody)
	}
	if answer.Text != "A stack is LIFO." {
		t.Errorf("answer = %q", answer.Text)
	}
	if len(answer.Sources) != 1 || answer.Sources[0].DocName != "DSA_Module_2.pdf" {
		t.Errorf("sources = %+v", answer.Sources)
	}
}

func TestAskOmitsAuthorizationWithoutToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected authorization header: %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte(`{"answer": "ok", "sources": []}`))
	}))
	defer server.Close()

	client := NewHTTPAnswerClient(server.URL, 5*time.Second)
	if _, err := client.Ask(context.Background(), "q", "FY", "Sem-1", ""); err != nil {
		t.Fatalf("Ask: %v", err)
	}
}

func TestAskRejectsNonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewHTTPAnswerClient(server.URL, 5*time.Second)
	if _, err := client.Ask(context.Background(), "q", "FY", "Sem-1", ""); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
