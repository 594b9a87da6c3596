package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"skill_roadmap_backend/internal/config"
)

func geminiReply(text string) string {
	body := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func newGeminiStub(t *testing.T, replyText string) (*httptest.Server, config.GeminiConfig) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			http.Error(w, "missing key", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiReply(replyText)))
	}))
	t.Cleanup(server.Close)

	return server, config.GeminiConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "gemini-pro",
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{`{"a":1}`, `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Fatalf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateRoadmapReshapesSubSkills(t *testing.T) {
	reply := "```json\n" + `{
		"skill": "Go",
		"domain": "Backend Development",
		"subSkills": [
			{"name": "Syntax", "description": "basics"},
			{"name": "Concurrency", "description": "goroutines", "order": 7}
		]
	}` + "\n```"
	_, cfg := newGeminiStub(t, reply)
	svc := NewGenerationService(cfg)

	roadmap, err := svc.GenerateRoadmap(context.Background(), " Go ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if roadmap.SubSkills[0].ID != "go-0" || roadmap.SubSkills[1].ID != "go-1" {
		t.Fatalf("unexpected ids: %q %q", roadmap.SubSkills[0].ID, roadmap.SubSkills[1].ID)
	}
	// 缺省 order 用序号补，已有的保留
	if roadmap.SubSkills[0].Order != 1 || roadmap.SubSkills[1].Order != 7 {
		t.Fatalf("unexpected orders: %d %d", roadmap.SubSkills[0].Order, roadmap.SubSkills[1].Order)
	}
	if !roadmap.SubSkills[0].IsUnlocked || roadmap.SubSkills[1].IsUnlocked {
		t.Fatalf("only the first sub-skill should be unlocked")
	}
}

func TestGenerateRoadmapRejectsEmptyShape(t *testing.T) {
	_, cfg := newGeminiStub(t, `{"skill":"Go","domain":"x","subSkills":[]}`)
	svc := NewGenerationService(cfg)

	if _, err := svc.GenerateRoadmap(context.Background(), "Go"); err == nil {
		t.Fatalf("expected error for empty sub-skills")
	}
}

func TestGenerateRoadmapRejectsUnparsableReply(t *testing.T) {
	_, cfg := newGeminiStub(t, "Sure! Here is your roadmap: ...")
	svc := NewGenerationService(cfg)

	if _, err := svc.GenerateRoadmap(context.Background(), "Go"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	svc := NewGenerationService(config.GeminiConfig{BaseURL: "http://localhost", Model: "gemini-pro"})

	_, err := svc.GenerateRoadmap(context.Background(), "Go")
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Fatalf("expected ErrAPIKeyMissing, got %v", err)
	}
}

func TestGenerateMicroSkillsReshapes(t *testing.T) {
	reply := `{
		"subSkill": "Hooks",
		"microSkills": [
			{"title": "useState", "explanation": "state", "code": "c", "output": "o", "notes": "n"},
			{"title": "useEffect", "explanation": "effects", "code": "c", "output": "o", "notes": "n"}
		]
	}`
	_, cfg := newGeminiStub(t, reply)
	svc := NewGenerationService(cfg)

	set, err := svc.GenerateMicroSkills(context.Background(), "React", "Hooks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if set.MicroSkills[0].ID != "react-hooks-0" || set.MicroSkills[1].ID != "react-hooks-1" {
		t.Fatalf("unexpected ids: %q %q", set.MicroSkills[0].ID, set.MicroSkills[1].ID)
	}
	if set.MicroSkills[1].Order != 2 {
		t.Fatalf("unexpected order %d", set.MicroSkills[1].Order)
	}
}

func TestGenerateMicroSkillsRejectsUntitledEntry(t *testing.T) {
	reply := `{"subSkill":"Hooks","microSkills":[{"title":"","explanation":"x"}]}`
	_, cfg := newGeminiStub(t, reply)
	svc := NewGenerationService(cfg)

	if _, err := svc.GenerateMicroSkills(context.Background(), "React", "Hooks"); err == nil {
		t.Fatalf("expected error for untitled micro-skill")
	}
}

func TestGenerateSurfacesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	svc := NewGenerationService(config.GeminiConfig{BaseURL: server.URL, APIKey: "k", Model: "gemini-pro"})
	if _, err := svc.GenerateRoadmap(context.Background(), "Go"); err == nil {
		t.Fatalf("expected error on non-200 reply")
	}
}
