package ml

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"NewsMoodBot/internal/config"
)

func TestClientClassify(t *testing.T) {
	t.Parallel()

	var gotBody struct {
		Inputs     string `json:"inputs"`
		Parameters struct {
			CandidateLabels []string `json:"candidate_labels"`
		} `json:"parameters"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"labels": []string{"позитив", "сарказм"},
			"scores": []float64{0.81, 0.12},
		})
	}))
	defer server.Close()

	client := NewClient(config.MLConfig{InferenceURL: server.URL, TimeoutSeconds: 5})

	ranked, err := client.Classify(context.Background(), "Хорошие новости. Всё растёт.", []string{"позитив", "сарказм"})
	if err != nil {
		t.Fatalf("Classify error: %v", err)
	}

	if ranked[0] != "позитив" {
		t.Fatalf("unexpected top label: %q", ranked[0])
	}
	if gotBody.Inputs != "Хорошие новости. Всё растёт." {
		t.Fatalf("unexpected inputs: %q", gotBody.Inputs)
	}
	if len(gotBody.Parameters.CandidateLabels) != 2 {
		t.Fatalf("unexpected candidate labels: %v", gotBody.Parameters.CandidateLabels)
	}
}

func TestClientClassifyServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(config.MLConfig{InferenceURL: server.URL, TimeoutSeconds: 5})
	if _, err := client.Classify(context.Background(), "текст", []string{"позитив"}); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestClientClassifyEmptyLabels(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"labels": []string{}})
	}))
	defer server.Close()

	client := NewClient(config.MLConfig{InferenceURL: server.URL, TimeoutSeconds: 5})
	if _, err := client.Classify(context.Background(), "текст", []string{"позитив"}); err == nil {
		t.Fatal("expected error for empty label list")
	}
}
