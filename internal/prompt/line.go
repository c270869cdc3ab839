// Copyright 2026 The labconf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// LinePrompter prompts on a text stream, one answer per line.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine returns a LinePrompter reading answers from in and writing
// questions to out.
func NewLine(in io.Reader, out io.Writer) *LinePrompter {
	if out == nil {
		out = io.Discard
	}
	p := &LinePrompter{out: out}
	if in != nil {
		p.in = bufio.NewReader(in)
	}
	return p
}

// Confirm accepts "y" or "yes" in any case; any other answer declines.
func (p *LinePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := p.ask(ctx, question+" (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *LinePrompter) Directory(ctx context.Context, what string) (string, error) {
	return p.ask(ctx, "Enter the path to the "+what+": ")
}

func (p *LinePrompter) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.in == nil {
		return "", ErrNoInput
	}
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			err = ErrNoInput
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
