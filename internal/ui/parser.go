package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a small CSS subset: rules whose selectors are .class or #id (comma
// lists allowed) with "key: value;" declarations. Other selectors are skipped, and so
// are combinators and @rules. Later rules override earlier ones for the same selector.
// On a syntax error the rules parsed so far are returned with the first error.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)

	var firstErr error
	var current []map[string]string
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if errors.Is(err, io.EOF) {
				return sheet, firstErr
			}
			if !p.HasParseError() {
				return sheet, err
			}
			if firstErr == nil {
				firstErr = fmt.Errorf("parse css: %w", err)
			}
		case css.BeginRulesetGrammar:
			current = current[:0]
			for _, sel := range selectors(p.Values()) {
				props := make(map[string]string)
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
				current = append(current, props)
			}
		case css.DeclarationGrammar:
			if len(current) == 0 {
				continue
			}
			v := value(p.Values())
			for _, props := range current {
				props[string(data)] = v
			}
		case css.EndRulesetGrammar:
			current = current[:0]
		}
	}
}

// selectors splits a ruleset prelude on commas and keeps the simple .class and #id ones.
func selectors(tokens []css.Token) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if len(s) >= 2 && (s[0] == '.' || s[0] == '#') && !strings.ContainsAny(s[1:], " .#:>+~[") {
			out = append(out, s)
		}
	}
	for _, t := range tokens {
		if t.TokenType == css.CommaToken {
			flush()
			continue
		}
		b.Write(t.Data)
	}
	flush()
	return out
}

func value(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
