// Package skills loads agent skill definitions from markdown files.
//
// A skill file is markdown with YAML front matter:
//
//	---
//	id: crm-hygiene
//	name: CRM Hygiene
//	description: Keeps the CRM tables tidy.
//	---
//	Prompt instructions for the agent...
//
//	```tools
//	sor_read
//	sor_write
//	```
//
// Fenced "tools" blocks list the extra tool names the skill grants; the rest
// of the body is appended to the agent's system prompt.
package skills

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrSkillNotFound is returned when a skill ID is not in the library.
var ErrSkillNotFound = errors.New("skill not found")

// Skill is one loaded skill definition.
type Skill struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Instructions is the markdown body with tools blocks removed.
	Instructions string `yaml:"-"`

	// Tools are the tool names this skill grants.
	Tools []string `yaml:"-"`
}

// Library is an in-memory skill registry loaded from a directory.
type Library struct {
	mu     sync.RWMutex
	skills map[string]*Skill
}

// Load reads every *.md file under dir. A missing directory yields an empty
// library; malformed files fail the whole load.
func Load(dir string) (*Library, error) {
	lib := &Library{skills: make(map[string]*Skill)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return lib, nil
		}
		return nil, fmt.Errorf("failed to read skills dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read skill %s: %w", entry.Name(), err)
		}
		skill, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse skill %s: %w", entry.Name(), err)
		}
		if skill.ID == "" {
			skill.ID = strings.TrimSuffix(entry.Name(), ".md")
		}
		lib.skills[skill.ID] = skill
	}

	return lib, nil
}

// Parse parses one skill file.
func Parse(data []byte) (*Skill, error) {
	front, body, err := splitFrontMatter(string(data))
	if err != nil {
		return nil, err
	}

	var skill Skill
	if err := yaml.Unmarshal([]byte(front), &skill); err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}

	skill.Instructions, skill.Tools = extractToolBlocks(body)
	return &skill, nil
}

// Get returns a skill by ID.
func (l *Library) Get(id string) (*Skill, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	skill, ok := l.skills[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSkillNotFound, id)
	}
	return skill, nil
}

// All returns every skill sorted by ID.
func (l *Library) All() []*Skill {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*Skill, 0, len(l.skills))
	for _, s := range l.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of loaded skills.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.skills)
}

// Compose resolves the given skill IDs and returns the combined prompt
// instructions and the union of granted tool names. Unknown IDs are skipped.
func (l *Library) Compose(ids []string) (string, []string) {
	var parts []string
	toolSet := make(map[string]struct{})

	for _, id := range ids {
		skill, err := l.Get(id)
		if err != nil {
			continue
		}
		if s := strings.TrimSpace(skill.Instructions); s != "" {
			parts = append(parts, s)
		}
		for _, tool := range skill.Tools {
			toolSet[tool] = struct{}{}
		}
	}

	tools := make([]string, 0, len(toolSet))
	for t := range toolSet {
		tools = append(tools, t)
	}
	sort.Strings(tools)
	return strings.Join(parts, "\n\n"), tools
}

// splitFrontMatter separates the leading "---" delimited YAML block from the
// markdown body.
func splitFrontMatter(content string) (front, body string, err error) {
	const delim = "---"

	trimmed := strings.TrimLeft(content, "\uFEFF\n\r ")
	if !strings.HasPrefix(trimmed, delim) {
		return "", "", errors.New("missing front matter")
	}

	rest := trimmed[len(delim):]
	idx := strings.Index(rest, "\n"+delim)
	if idx < 0 {
		return "", "", errors.New("unterminated front matter")
	}

	front = rest[:idx]
	body = rest[idx+len(delim)+1:]
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	return front, body, nil
}

// extractToolBlocks removes ```tools fences from the body and collects the
// tool names they list.
func extractToolBlocks(body string) (string, []string) {
	var (
		out     []string
		tools   []string
		inBlock bool
	)
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inBlock && strings.HasPrefix(trimmed, "```tools"):
			inBlock = true
		case inBlock && strings.HasPrefix(trimmed, "```"):
			inBlock = false
		case inBlock:
			if trimmed != "" {
				tools = append(tools, trimmed)
			}
		default:
			out = append(out, line)
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n")), tools
}
