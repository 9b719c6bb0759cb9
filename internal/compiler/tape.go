package compiler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// ParseTape reads the initial tape content: one line of ';' separated integers, cell 0 first.
// A single trailing ';' is accepted. Only the first line is read.
func ParseTape(r io.Reader) ([]int, error) {
	scanner := newLineScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read tape: %w", err)
		}
		return nil, domain.ErrEmptyInput
	}

	line := strings.TrimSuffix(scanner.Text(), "\r")
	if len(line) > 1 {
		line = strings.TrimSuffix(line, ";")
	}

	tokens := strings.Split(line, ";")
	values := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &domain.TapeFormatError{Cell: i, Text: tok}
		}
		values = append(values, v)
	}
	return values, nil
}
