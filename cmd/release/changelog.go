package main

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Entry is a single version section of the changelog
type Entry struct {
	Version string
	Date    string
	Notes   string
}

// Changelog is a parsed Keep a Changelog file
type Changelog struct {
	Entries []Entry
	Links   map[string]string
}

// FindVersion finds a version entry, tolerating a leading "v"
func (c *Changelog) FindVersion(version string) *Entry {
	version = strings.TrimPrefix(version, "v")

	for i := range c.Entries {
		if strings.TrimPrefix(c.Entries[i].Version, "v") == version {
			return &c.Entries[i]
		}
	}
	return nil
}

// section marks an h2 heading and where its body starts in the source
type section struct {
	version   string
	date      string
	headStart int
	bodyStart int
}

// ParseChangelog parses a Keep a Changelog formatted markdown file. The
// goldmark AST gives heading positions; entry bodies are sliced out of the
// raw source between consecutive h2 headings.
func ParseChangelog(source []byte) (*Changelog, error) {
	md := goldmark.New()
	reader := text.NewReader(source)
	ctx := parser.NewContext()
	doc := md.Parser().Parse(reader, parser.WithContext(ctx))

	changelog := &Changelog{
		Links: make(map[string]string),
	}

	for _, ref := range ctx.References() {
		changelog.Links[string(ref.Label())] = string(ref.Destination())
	}

	var sections []section
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}

		version, date := splitVersionHeading(headingText(heading, source))

		s := section{version: version, date: date}
		if lines := heading.Lines(); lines.Len() > 0 {
			s.headStart = lines.At(0).Start
			s.bodyStart = lines.At(lines.Len() - 1).Stop
		}
		sections = append(sections, s)

		return ast.WalkContinue, nil
	})

	for i, s := range sections {
		bodyEnd := len(source)
		if i+1 < len(sections) {
			bodyEnd = sections[i+1].headStart
		}

		notes := ""
		if s.bodyStart < bodyEnd {
			notes = strings.TrimSpace(string(source[s.bodyStart:bodyEnd]))
		}

		changelog.Entries = append(changelog.Entries, Entry{
			Version: s.version,
			Date:    s.date,
			Notes:   notes,
		})
	}

	return changelog, nil
}

func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
		case *ast.Link:
			for linkChild := n.FirstChild(); linkChild != nil; linkChild = linkChild.NextSibling() {
				if textNode, ok := linkChild.(*ast.Text); ok {
					buf.Write(textNode.Segment.Value(source))
				}
			}
		}
	}
	return buf.String()
}

// splitVersionHeading splits "## [X.Y.Z] - YYYY-MM-DD" style headings into
// version and date, also accepting the plain "X.Y.Z - YYYY-MM-DD" form
func splitVersionHeading(heading string) (version, date string) {
	heading = strings.TrimSpace(heading)

	heading = strings.TrimPrefix(heading, "[")
	if idx := strings.Index(heading, "]"); idx != -1 {
		version = heading[:idx]
		rest := strings.TrimSpace(heading[idx+1:])
		if strings.HasPrefix(rest, "- ") {
			date = strings.TrimSpace(rest[2:])
		}
	} else if idx := strings.Index(heading, " - "); idx != -1 {
		version = strings.TrimSpace(heading[:idx])
		date = strings.TrimSpace(heading[idx+3:])
	} else {
		version = heading
	}

	return version, date
}
