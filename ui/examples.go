package ui

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// Example is a ready-made program offered on the playground page.
type Example struct {
	Name   string
	Title  string
	Source string
}

// loadExamples reads every *.java file in fsys. File names carry an ordering
// prefix, so "03-for-loop.java" becomes the example "for-loop" titled
// "For Loop".
func loadExamples(fsys fs.FS) ([]Example, error) {
	files, err := fs.Glob(fsys, "*.java")
	if err != nil {
		return nil, err
	}

	var examples []Example
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read example %s: %w", file, err)
		}
		name := strings.TrimSuffix(path.Base(file), ".java")
		if i := strings.IndexByte(name, '-'); i > 0 && isDigits(name[:i]) {
			name = name[i+1:]
		}
		examples = append(examples, Example{
			Name:   name,
			Title:  exampleTitle(name),
			Source: string(data),
		})
	}
	return examples, nil
}

func exampleTitle(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		switch {
		case w == "and":
			words[i] = "&"
		case w != "":
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
