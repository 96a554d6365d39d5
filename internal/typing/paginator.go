package typing

// DefaultPageSize is the number of characters shown per page.
const DefaultPageSize = 250

// Paginator slices a reference text into fixed-size windows and tracks
// which window is currently visible. Page starts only ever move forward,
// and always by exactly the page size.
type Paginator struct {
	text     []rune
	pageSize int
	start    int
}

// NewPaginator creates a paginator over text. A non-positive pageSize
// falls back to DefaultPageSize.
func NewPaginator(text string, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{
		text:     []rune(text),
		pageSize: pageSize,
	}
}

// Window returns the currently visible slice of the reference text.
func (p *Paginator) Window() []rune {
	end := p.start + p.pageSize
	if end > len(p.text) {
		end = len(p.text)
	}
	return p.text[p.start:end]
}

// Start returns the character offset of the current page.
func (p *Paginator) Start() int {
	return p.start
}

// PageSize returns the fixed page size.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// TotalLen returns the length of the full reference text in characters.
func (p *Paginator) TotalLen() int {
	return len(p.text)
}

// IsLast reports whether the current page is the final one. No advance
// ever happens from the final page.
func (p *Paginator) IsLast() bool {
	return p.start+p.pageSize >= len(p.text)
}

// Advance moves to the next page. It returns false (and does nothing)
// when the current page is already the last.
func (p *Paginator) Advance() bool {
	if p.IsLast() {
		return false
	}
	p.start += p.pageSize
	return true
}

// Typed returns the full run of reference text covered by completed pages
// plus the given input on the current page. Used for whole-session word
// counting.
func (p *Paginator) Typed(input []rune) []rune {
	out := make([]rune, 0, p.start+len(input))
	out = append(out, p.text[:p.start]...)
	out = append(out, input...)
	return out
}

// Progress returns overall completion through the full text in [0, 1],
// given the input length on the current page.
func (p *Paginator) Progress(inputLen int) float64 {
	if len(p.text) == 0 {
		return 0
	}
	done := float64(p.start+inputLen) / float64(len(p.text))
	if done > 1 {
		done = 1
	}
	return done
}
