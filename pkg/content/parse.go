package content

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// Parse decodes completion output into a Record. It first attempts the whole
// body as JSON. Completion models often wrap structured output in prose or a
// markdown fence, so on failure each fenced code block (untagged or tagged
// "json") is tried in document order. Anything else is unparseable - there is
// no brace-balancing recovery and no schema coercion.
func Parse(body string) (*Record, error) {
	source := []byte(body)

	if record, err := parseRecord(source); err == nil {
		return record, nil
	}

	var record *Record

	document := markdown.Parser().Parse(text.NewReader(source))

	ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := node.(*ast.FencedCodeBlock)

		if !ok {
			return ast.WalkContinue, nil
		}

		if language := string(block.Language(source)); language != "" && language != "json" {
			return ast.WalkContinue, nil
		}

		var data bytes.Buffer

		lines := block.Lines()

		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			data.Write(line.Value(source))
		}

		if r, err := parseRecord(data.Bytes()); err == nil {
			record = r
			return ast.WalkStop, nil
		}

		return ast.WalkContinue, nil
	})

	if record == nil {
		return nil, ErrUnparseableContent
	}

	return record, nil
}

func parseRecord(data []byte) (*Record, error) {
	var record *Record

	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}

	// "null" decodes without error but carries no record
	if record == nil {
		return nil, errors.New("null payload")
	}

	return record, nil
}
