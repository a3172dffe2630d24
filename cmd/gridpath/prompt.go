package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errInput = errors.New("invalid input")

// prompter asks questions on out and reads whitespace-separated answers from in.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &prompter{sc: sc, out: out}
}

func (p *prompter) next() (string, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return p.sc.Text(), nil
}

// yesNo treats y/Y as yes and any other answer as no.
func (p *prompter) yesNo(question string) (bool, error) {
	fmt.Fprint(p.out, question)
	w, err := p.next()
	if err != nil {
		return false, err
	}
	return w == "y" || w == "Y", nil
}

func (p *prompter) float(question string) (float64, error) {
	fmt.Fprint(p.out, question)
	w, err := p.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInput, w)
	}
	return v, nil
}

// coord reads a "row column" pair; "row,column" and "row, column" also work.
func (p *prompter) coord(question string) (row, col int, err error) {
	fmt.Fprint(p.out, question)
	var parts []string
	for len(parts) < 2 {
		w, err := p.next()
		if err != nil {
			return 0, 0, err
		}
		parts = append(parts, splitPair(w)...)
	}
	return pairInts(strings.Join(parts, ","), parts)
}

// parseCoord parses a 1-indexed "row,column" flag value.
func parseCoord(s string) (row, col int, err error) {
	return pairInts(s, splitPair(s))
}

func splitPair(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

func pairInts(raw string, parts []string) (row, col int, err error) {
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: want \"row,column\", got %q", errInput, raw)
	}
	row, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", errInput, parts[0])
	}
	col, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", errInput, parts[1])
	}
	return row, col, nil
}
