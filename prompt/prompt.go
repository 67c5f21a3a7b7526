/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package prompt

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"unicode"
)

// Prompt is an immutable template with named placeholders. Bind methods return
// a new Prompt; the receiver is never modified.
type Prompt struct {
	template string
	bindings map[string]binding
}

// Bindable binds request-specific values into a prompt template.
type Bindable interface {
	Bind(p *Prompt) (*Prompt, error)
}

// New parses a template and registers a placeholder for every {{name}} token.
func New(template string) (*Prompt, error) {
	bindings := make(map[string]binding)
	if _, err := walk(template, func(name string) (string, error) {
		if _, ok := bindings[name]; !ok {
			bindings[name] = &unbound{name: name}
		}
		return "", nil
	}); err != nil {
		return nil, err
	}
	return &Prompt{template: template, bindings: bindings}, nil
}

// Placeholders returns the set of placeholder names found in the template.
func (p *Prompt) Placeholders() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// BindString binds a developer-provided string to a placeholder.
func (p *Prompt) BindString(name, value string) (*Prompt, error) {
	return p.bind(name, &literal{val: value})
}

// BindXML binds structured data as indented XML. Use this for values that
// originate outside the program so they cannot alter the template structure.
func (p *Prompt) BindXML(name string, data any) (*Prompt, error) {
	return p.bind(name, &xmlValue{data: data})
}

// BindJSON binds structured data as indented JSON.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, &jsonValue{data: data})
}

// BindYAML binds structured data as YAML.
func (p *Prompt) BindYAML(name string, data any) (*Prompt, error) {
	return p.bind(name, &yamlValue{data: data})
}

func (p *Prompt) bind(name string, b binding) (*Prompt, error) {
	cur, ok := p.bindings[name]
	if !ok {
		return nil, fmt.Errorf("placeholder %q not found in template", name)
	}
	if _, isUnbound := cur.(*unbound); !isUnbound {
		return nil, fmt.Errorf("placeholder %q already bound", name)
	}
	next := &Prompt{template: p.template, bindings: maps.Clone(p.bindings)}
	next.bindings[name] = b
	return next, nil
}

// Build renders the template. It fails if any placeholder is still unbound.
func (p *Prompt) Build() (string, error) {
	values := make(map[string]string, len(p.bindings))
	for name, b := range p.bindings {
		v, err := b.value()
		if err != nil {
			return "", err
		}
		values[name] = v
	}
	return walk(p.template, func(name string) (string, error) {
		return values[name], nil
	})
}

// walk tokenizes the template, calling resolve for each {{name}} placeholder
// and splicing the result into the output.
func walk(template string, resolve func(name string) (string, error)) (string, error) {
	var out strings.Builder
	for len(template) > 0 {
		start := strings.Index(template, "{{")
		if start == -1 {
			out.WriteString(template)
			break
		}
		out.WriteString(template[:start])

		end := strings.Index(template[start:], "}}")
		if end == -1 {
			return "", errors.New("unclosed placeholder: missing '}}'")
		}
		end += start + 2

		name := strings.TrimSpace(template[start+2 : end-2])
		if !validName(name) {
			return "", fmt.Errorf("invalid placeholder name %q", name)
		}
		replacement, err := resolve(name)
		if err != nil {
			return "", err
		}
		out.WriteString(replacement)
		template = template[end:]
	}
	return out.String(), nil
}

// validName reports whether s is a letter followed by letters, digits, or
// underscores.
func validName(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsLetter(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
