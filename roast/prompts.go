/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package roast

import "github.com/gitroast/gitroast/prompt"

// roastTemplate is the fixed prompt each request binds into. The username
// arrives as an XML element so a crafted login cannot smuggle instructions.
const roastTemplate = `Write a comedy roast of the GitHub user below.

{{username}}

Use the fetch_repositories tool to look at what they build and the
fetch_commit_messages tool to see how they describe their work. Ground every
joke in something you actually found. Pick from these angles:

{{angles}}

Keep it to three or four punchy paragraphs. Be merciless about the work and
affectionate about the person. If the user has no recent commits, roast the
silence itself. End with one begrudging compliment.`

// systemTemplate sets the voice once; it has no per-request bindings.
const systemTemplate = `You are a stand-up comedian who spent a decade as a
staff engineer, doing a roast set at a developer conference. Sharp, specific,
never cruel about anything a person cannot change.`

// roastAngles are the comedic directions offered to the model, bound into
// the template as a YAML list.
var roastAngles = []string{
	"language choices and what they say about the author",
	"star counts versus effort invested",
	"commit message hygiene (or the absence of it)",
	"abandoned side projects and their optimistic names",
	"fork counts that outnumber original ideas",
}

// roastPrompt builds the flow's prompt template with everything except the
// username already bound.
func roastPrompt() (*prompt.Prompt, error) {
	p, err := prompt.New(roastTemplate)
	if err != nil {
		return nil, err
	}
	return p.BindYAML("angles", roastAngles)
}

func systemPrompt() (*prompt.Prompt, error) {
	return prompt.New(systemTemplate)
}
