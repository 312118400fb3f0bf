package directive

import (
	"strings"

	"solscope/internal/source"
	"solscope/internal/token"
)

// Extract scans the ordered comment list of one file and returns the
// ordered directive/error list. Comments that do not begin with the
// marker are not directives and are skipped entirely.
func Extract(f *source.File, comments []token.Comment) []Item {
	var items []Item
	for _, c := range comments {
		body := commentBody(c)
		if !strings.HasPrefix(body, Marker) {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(body, Marker))
		items = append(items, parseOne(f, c, payload))
	}
	return items
}

// commentBody strips the comment markers and surrounding whitespace.
func commentBody(c token.Comment) string {
	text := c.Text
	switch c.Kind {
	case token.CommentLine:
		text = strings.TrimPrefix(text, "//")
	case token.CommentBlock:
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
	}
	return strings.TrimSpace(text)
}

var directiveKinds = map[string]Kind{
	"disable-next-line": DisableNextLine,
	"disable-line":      DisableLine,
	"disable-start":     DisableStart,
	"disable-end":       DisableEnd,
}

func parseOne(f *source.File, c token.Comment, payload string) Item {
	line := f.LineOf(c.Span.Start)
	invalid := func() Item {
		return Item{Err: &Invalid{Text: payload, Span: c.Span, Line: line}}
	}

	fields := strings.Fields(payload)
	if len(fields) == 0 || len(fields) > 2 {
		return invalid()
	}

	kind, ok := directiveKinds[fields[0]]
	if !ok {
		return invalid()
	}

	filter := FilterAll
	if len(fields) == 2 {
		filter, ok = ruleNames[fields[1]]
		if !ok {
			return invalid()
		}
	}

	return Item{Dir: &Directive{
		Kind:   kind,
		Filter: filter,
		Span:   c.Span,
		Line:   line,
	}}
}
