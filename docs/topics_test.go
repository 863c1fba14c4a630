package docs

import (
	"bufio"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every topic file is listed in readme.md.
	// 3. Every topic parses as markdown.

	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("failed to get topic readme: %v", err)
	}

	var topicsInReadme []string
	scanner := bufio.NewScanner(strings.NewReader(readme))
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	listed := make(map[string]bool)
	for _, topic := range topicsInReadme {
		listed[topic] = true
	}
	for _, topic := range all {
		if topic == "readme" {
			continue
		}
		if !listed[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}

	// Markdown sanity: every topic must parse.
	md := goldmark.New()
	for _, topic := range all {
		t.Run("parse_"+topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic %q: %v", topic, err)
			}
			doc := md.Parser().Parse(text.NewReader([]byte(content)))
			if doc == nil || !doc.HasChildren() {
				t.Errorf("topic %q parsed to an empty document", topic)
			}
		})
	}
}

func TestGetTopic_Unknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic of an unknown topic should fail")
	}
}
