package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD format used for puzzle dates
const DateLayout = "2006-01-02"

// Puzzle represents one day's article-guessing challenge
type Puzzle struct {
	ID        int64    `json:"-"`
	Date      string   `json:"date"`
	Answer    string   `json:"answer"`
	Sections  []string `json:"sections"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Extract   string   `json:"extract,omitempty"`
}

// Validate checks that a puzzle is well-formed before it enters the database
func (p *Puzzle) Validate() error {
	if _, err := time.Parse(DateLayout, p.Date); err != nil {
		return fmt.Errorf("invalid puzzle date %q: %w", p.Date, err)
	}
	if strings.TrimSpace(p.Answer) == "" {
		return errors.New("puzzle answer is empty")
	}
	if len(p.Sections) == 0 {
		return errors.New("puzzle has no sections")
	}
	for i, s := range p.Sections {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("puzzle section %d is empty", i)
		}
	}
	return nil
}

// ArticleURL returns the Wikipedia URL for the puzzle's answer
func (p *Puzzle) ArticleURL() string {
	title := strings.ReplaceAll(p.Answer, " ", "_")
	return "https://en.wikipedia.org/wiki/" + url.PathEscape(title)
}
