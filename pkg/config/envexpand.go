package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables into YAML catalog files using
// Go template syntax, {{.VAR_NAME}}. Plain $VAR expansion is deliberately not
// supported: provider configs routinely carry literal $ characters (regex
// anchors, passwords, shell fragments) that must pass through untouched.
//
//	api_key: {{.OPENAI_API_KEY}}
//	endpoint: {{.LLM_HOST}}:{{.LLM_PORT}}
//	pattern: "user_${USER_ID}_.*"   literal, left as-is
//
// Missing variables expand to the empty string; required-field validation
// happens after parsing.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// Not a template, pass the content through unchanged.
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
