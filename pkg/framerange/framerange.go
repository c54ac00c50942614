// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package framerange parses frame-range expressions such as "1-10, 47, 100-110"
// and splits them into chunks of bounded size.
package framerange

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"render-border/pkg/job"
)

// Kind distinguishes single frames from inclusive ranges.
type Kind int

const (
	Single Kind = iota
	Range
)

// Token is one comma-separated item of a frame-range expression.
type Token struct {
	Kind  Kind
	Start int
	End   int
	// Text is the serialized form, with surrounding whitespace removed.
	Text string
}

var tokenPattern = regexp.MustCompile(`^(-?\d+)(?:\s*-\s*(-?\d+))?$`)

// MaxFrame is the largest frame number Blender accepts; -MaxFrame is the
// smallest. Keeping frames in this range keeps every span well inside int.
const MaxFrame = 1048574

func parseFrame(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < -MaxFrame || n > MaxFrame {
		return 0, job.Configurationf("frames", "frame %q out of range [%d, %d]", s, -MaxFrame, MaxFrame)
	}
	return n, nil
}

// ParseToken parses a single item: "N" or "A-B".
func ParseToken(s string) (Token, error) {
	s = strings.TrimSpace(s)
	m := tokenPattern.FindStringSubmatch(s)
	if m == nil {
		return Token{}, job.Configurationf("frames", "malformed frame token %q", s)
	}
	start, err := parseFrame(m[1])
	if err != nil {
		return Token{}, err
	}
	if m[2] == "" {
		return Token{Kind: Single, Start: start, End: start, Text: m[1]}, nil
	}
	end, err := parseFrame(m[2])
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: Range, Start: start, End: end, Text: m[1] + "-" + m[2]}, nil
}

// Parse tokenizes a frame-range expression. An empty expression yields no tokens.
func Parse(expr string) ([]Token, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, nil
	}
	items := strings.Split(expr, ",")
	tokens := make([]Token, 0, len(items))
	for _, item := range items {
		tok, err := ParseToken(item)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Frames is the number of frames the token covers.
func (t Token) Frames() int {
	if t.End >= t.Start {
		return t.End - t.Start + 1
	}
	return t.Start - t.End + 1
}

func (t Token) String() string {
	return t.Text
}

// split cuts the token into consecutive pieces of at most size frames,
// following the direction of the range.
func (t Token) split(size int) []Token {
	if t.Frames() <= size {
		return []Token{t}
	}
	step := 1
	if t.End < t.Start {
		step = -1
	}
	var pieces []Token
	for from, left := t.Start, t.Frames(); left > 0; {
		n := size
		if left < n {
			n = left
		}
		pieces = append(pieces, span(from, from+step*(n-1)))
		from += step * n
		left -= n
	}
	return pieces
}

func span(start, end int) Token {
	if start == end {
		return Token{Kind: Single, Start: start, End: end, Text: strconv.Itoa(start)}
	}
	return Token{Kind: Range, Start: start, End: end, Text: fmt.Sprintf("%d-%d", start, end)}
}

// Chunk groups tokens into chunks of at most size frames.
//
// Tokens are accumulated in order; a token that does not fit in the current
// chunk closes it. Ranges longer than size are split, and the remainder of a
// split range stays open for the tokens that follow.
func Chunk(tokens []Token, size int) ([][]Token, error) {
	if size <= 0 {
		return nil, job.Configurationf("chunk_size", "must be a positive integer, got %d", size)
	}
	var (
		chunks  [][]Token
		current []Token
		count   int
	)
	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, current)
			current, count = nil, 0
		}
	}
	for _, tok := range tokens {
		for _, piece := range tok.split(size) {
			if count+piece.Frames() > size {
				flush()
			}
			current = append(current, piece)
			count += piece.Frames()
		}
	}
	flush()
	return chunks, nil
}

// Join serializes tokens back into the expression grammar.
func Join(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Text
	}
	return strings.Join(parts, ",")
}

// ChunkExpression parses expr and returns its chunks as expression strings.
func ChunkExpression(expr string, size int) ([]string, error) {
	if size <= 0 {
		return nil, job.Configurationf("chunk_size", "must be a positive integer, got %d", size)
	}
	tokens, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	chunks, err := Chunk(tokens, size)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = Join(c)
	}
	return out, nil
}

// Bounds returns the start and end frame handed to the renderer for a chunk.
//
// A comma list uses the start of its first item and the end of its last item;
// frames in between are not represented. A range uses its two ends and a
// single frame is used for both.
func Bounds(chunk string) (start, end int, err error) {
	items := strings.Split(chunk, ",")
	first, err := ParseToken(items[0])
	if err != nil {
		return 0, 0, err
	}
	last := first
	if len(items) > 1 {
		if last, err = ParseToken(items[len(items)-1]); err != nil {
			return 0, 0, err
		}
	}
	return first.Start, last.End, nil
}
