// Package typewriter cycles a hero title through a list of words, typing and
// deleting one character at a time.
package typewriter

import "time"

// DefaultWords are the names shown when no words are configured.
var DefaultWords = []string{"Vorizon", "8140", "Mishapolk"}

// Timing controls the per-character and pause delays.
type Timing struct {
	Type   time.Duration
	Delete time.Duration
	Hold   time.Duration // pause on a complete word
	Next   time.Duration // pause on an empty title before the next word
}

// DefaultTiming returns the standard delays.
func DefaultTiming() Timing {
	return Timing{
		Type:   100 * time.Millisecond,
		Delete: 50 * time.Millisecond,
		Hold:   2000 * time.Millisecond,
		Next:   500 * time.Millisecond,
	}
}

// Typewriter holds the cycle position. The zero value is not usable; call New.
type Typewriter struct {
	words  [][]rune
	timing Timing

	word     int
	chars    int
	deleting bool
	text     string

	due    time.Time
	primed bool
}

// New builds a typewriter over words. An empty list yields an empty title.
func New(words []string, timing Timing) *Typewriter {
	t := &Typewriter{timing: timing}
	for _, w := range words {
		t.words = append(t.words, []rune(w))
	}
	return t
}

// Text returns the currently displayed title.
func (t *Typewriter) Text() string { return t.text }

// Word returns the index of the word being typed or deleted.
func (t *Typewriter) Word() int { return t.word }

// Deleting reports whether the title is currently shrinking.
func (t *Typewriter) Deleting() bool { return t.deleting }

// Step types or deletes one character and returns the new title with the
// delay before the next step.
func (t *Typewriter) Step() (string, time.Duration) {
	if len(t.words) == 0 {
		t.text = ""
		return t.text, t.timing.Next
	}
	cur := t.words[t.word]
	if t.deleting {
		if t.chars > 0 {
			t.chars--
		}
	} else if t.chars < len(cur) {
		t.chars++
	}
	t.text = string(cur[:t.chars])

	wait := t.timing.Type
	if t.deleting {
		wait = t.timing.Delete
	}
	switch {
	case !t.deleting && t.chars == len(cur):
		wait = t.timing.Hold
		t.deleting = true
	case t.deleting && t.chars == 0:
		t.deleting = false
		t.word = (t.word + 1) % len(t.words)
		wait = t.timing.Next
	}
	return t.text, wait
}

// Update runs every step that is due at now and returns the title. The first
// call steps immediately.
func (t *Typewriter) Update(now time.Time) string {
	if !t.primed {
		t.primed = true
		t.due = now
	}
	// Bounded so a long stall cannot spin through thousands of steps.
	for i := 0; i < 64 && !now.Before(t.due); i++ {
		_, wait := t.Step()
		if wait <= 0 {
			wait = time.Millisecond
		}
		t.due = t.due.Add(wait)
	}
	return t.text
}
