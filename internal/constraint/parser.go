package constraint

import (
	"strconv"
	"strings"
	"time"

	"rehearsal-service/internal/timeutil"
)

// Syntax tree produced by the parser. Numbers are kept raw here; range
// resolution, calendar validation and the PM heuristic happen in the
// semantic pass so that malformed-but-parseable input still reports a
// semantic error rather than a syntax one.

type clauseNode struct {
	day     string    // canonical weekday, set on the weekday path
	date    *dateNode // set on the date path
	dateEnd *dateNode // set when the clause is a date range
	rng     *rangeNode
}

type dateNode struct {
	month time.Month
	day   int
	year  int
}

type rangeKind int

const (
	rangeExplicit rangeKind = iota
	rangeUntil
	rangeAfter
)

type rangeNode struct {
	kind  rangeKind
	start *timeNode // nil for until/before
	end   *timeNode // nil for after
}

type timeNode struct {
	hour     int
	minute   int
	meridiem string // "", "am" or "pm"
}

type parser struct {
	input string
	toks  []token
	i     int
}

// parseGroup parses one comma-separated constraint group into its clauses.
func parseGroup(input string) ([]clauseNode, *SyntaxError) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input, toks: toks}

	var clauses []clauseNode
	for {
		clause, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)

		switch p.peek().kind {
		case tokenEOF:
			return clauses, nil
		case tokenComma:
			p.next()
		default:
			return nil, p.failf([]string{"COMMA"})
		}
	}
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	tok := p.toks[p.i]
	if tok.kind != tokenEOF {
		p.i++
	}
	return tok
}

func (p *parser) failf(expected []string) *SyntaxError {
	return &SyntaxError{Input: p.input, Pos: p.peek().pos, Expected: expected}
}

func (p *parser) parseClause() (clauseNode, *SyntaxError) {
	tok := p.peek()
	switch tok.kind {
	case tokenWord:
		lower := strings.ToLower(tok.text)
		if day, ok := timeutil.ParseWeekday(lower); ok {
			p.next()
			clause := clauseNode{day: day}
			if p.startsTimeRange() {
				rng, err := p.parseTimeRange()
				if err != nil {
					return clauseNode{}, err
				}
				clause.rng = rng
			}
			return clause, nil
		}
		if _, ok := timeutil.ParseMonth(lower); ok {
			return p.parseDateClause()
		}
		return clauseNode{}, &SyntaxError{
			Input:    p.input,
			Pos:      tok.pos,
			Expected: []string{"WEEKDAY", "MONTH"},
			Choice:   true,
		}
	case tokenInt:
		return p.parseDateClause()
	default:
		return clauseNode{}, p.failf([]string{"WEEKDAY", "MONTH", "INT"})
	}
}

// parseDateClause parses a date followed optionally by "-" date (a range) or
// by a time range (a timed single date).
func (p *parser) parseDateClause() (clauseNode, *SyntaxError) {
	date, err := p.parseDate()
	if err != nil {
		return clauseNode{}, err
	}
	clause := clauseNode{date: date}

	switch {
	case p.peek().kind == tokenDash:
		p.next()
		end, err := p.parseDate()
		if err != nil {
			return clauseNode{}, err
		}
		clause.dateEnd = end
	case p.startsTimeRange():
		rng, err := p.parseTimeRange()
		if err != nil {
			return clauseNode{}, err
		}
		clause.rng = rng
	}
	return clause, nil
}

// parseDate accepts "Jan 2 26", "Jan 2 2026", "1/2/26" and "1/2/2026".
func (p *parser) parseDate() (*dateNode, *SyntaxError) {
	tok := p.peek()
	switch tok.kind {
	case tokenWord:
		month, ok := timeutil.ParseMonth(tok.text)
		if !ok {
			return nil, &SyntaxError{
				Input:    p.input,
				Pos:      tok.pos,
				Expected: []string{"MONTH"},
				Choice:   true,
			}
		}
		p.next()
		day, err := p.expectInt("DAY")
		if err != nil {
			return nil, err
		}
		year, err := p.expectInt("YEAR")
		if err != nil {
			return nil, err
		}
		return &dateNode{month: month, day: day, year: year}, nil
	case tokenInt:
		monthNum, _ := p.expectInt("MONTH")
		if err := p.expectKind(tokenSlash, "SLASH"); err != nil {
			return nil, err
		}
		day, err := p.expectInt("DAY")
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(tokenSlash, "SLASH"); err != nil {
			return nil, err
		}
		year, err := p.expectInt("YEAR")
		if err != nil {
			return nil, err
		}
		return &dateNode{month: time.Month(monthNum), day: day, year: year}, nil
	default:
		return nil, p.failf([]string{"MONTH", "INT"})
	}
}

// startsTimeRange reports whether the next tokens begin a time range.
func (p *parser) startsTimeRange() bool {
	tok := p.peek()
	if tok.kind == tokenInt {
		return true
	}
	if tok.kind == tokenWord {
		switch strings.ToLower(tok.text) {
		case "until", "before", "after":
			return true
		}
	}
	return false
}

func (p *parser) parseTimeRange() (*rangeNode, *SyntaxError) {
	tok := p.peek()
	if tok.kind == tokenWord {
		switch strings.ToLower(tok.text) {
		case "until", "before":
			p.next()
			t, err := p.parseTime()
			if err != nil {
				return nil, err
			}
			return &rangeNode{kind: rangeUntil, end: t}, nil
		case "after":
			p.next()
			t, err := p.parseTime()
			if err != nil {
				return nil, err
			}
			return &rangeNode{kind: rangeAfter, start: t}, nil
		}
	}

	start, err := p.parseTime()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(tokenDash, "DASH"); err != nil {
		return nil, err
	}
	end, err := p.parseTime()
	if err != nil {
		return nil, err
	}
	return &rangeNode{kind: rangeExplicit, start: start, end: end}, nil
}

// parseTime accepts "5", "5:30", "5pm" and "5:30 pm".
func (p *parser) parseTime() (*timeNode, *SyntaxError) {
	hour, err := p.expectInt("TIME")
	if err != nil {
		return nil, err
	}
	t := &timeNode{hour: hour}

	if p.peek().kind == tokenColon {
		p.next()
		minute, err := p.expectInt("MINUTE")
		if err != nil {
			return nil, err
		}
		t.minute = minute
	}

	if tok := p.peek(); tok.kind == tokenWord {
		switch strings.ToLower(tok.text) {
		case "am", "pm":
			t.meridiem = strings.ToLower(tok.text)
			p.next()
		}
	}
	return t, nil
}

func (p *parser) expectInt(name string) (int, *SyntaxError) {
	tok := p.peek()
	if tok.kind != tokenInt {
		return 0, p.failf([]string{name})
	}
	p.next()
	n, err := strconv.Atoi(tok.text)
	if err != nil {
		return 0, p.failf([]string{name})
	}
	return n, nil
}

func (p *parser) expectKind(kind tokenKind, name string) *SyntaxError {
	if p.peek().kind != kind {
		return p.failf([]string{name})
	}
	p.next()
	return nil
}
