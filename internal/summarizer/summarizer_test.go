package summarizer

import "testing"

func TestGenerationConfigAttachesSearchTool(t *testing.T) {
	cfg := generationConfig()
	if cfg == nil || len(cfg.Tools) != 1 {
		t.Fatalf("generationConfig() tools = %v, want exactly one", cfg)
	}
	if cfg.Tools[0].GoogleSearch == nil {
		t.Error("generationConfig() missing the web search tool")
	}
}
