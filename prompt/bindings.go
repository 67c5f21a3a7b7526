/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package prompt

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"gopkg.in/yaml.v3"
)

// binding is a value that replaces a placeholder at Build time.
type binding interface {
	value() (string, error)
}

// unbound is the initial state of every placeholder.
type unbound struct {
	name string
}

func (u *unbound) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", u.name)
}

type literal struct {
	val string
}

func (l *literal) value() (string, error) {
	return l.val, nil
}

type xmlValue struct {
	data any
}

func (x *xmlValue) value() (string, error) {
	b, err := xml.MarshalIndent(x.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling XML binding: %w", err)
	}
	return string(b), nil
}

type jsonValue struct {
	data any
}

func (j *jsonValue) value() (string, error) {
	b, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON binding: %w", err)
	}
	return string(b), nil
}

type yamlValue struct {
	data any
}

func (y *yamlValue) value() (string, error) {
	b, err := yaml.Marshal(y.data)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML binding: %w", err)
	}
	return string(b), nil
}
