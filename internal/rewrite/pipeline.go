package rewrite

import "strings"

// DefaultIndent is the indent unit used when splitting conditional one-liners.
const DefaultIndent = "  "

// Transform maps whole-file text to whole-file text. Implementations must be
// pure: the same input always yields the same output.
type Transform struct {
	Name  string
	Apply func(text string) string
}

// Options configures the pipeline.
type Options struct {
	// IndentWidth is the number of spaces in one indent unit. Zero means DefaultIndent.
	IndentWidth int
}

func (o Options) indent() string {
	if o.IndentWidth <= 0 {
		return DefaultIndent
	}
	return strings.Repeat(" ", o.IndentWidth)
}

// Pipeline is an ordered list of transforms. Order is significant: the
// conditional split runs on text whose quotes and keyword spacing were already
// normalized.
type Pipeline struct {
	steps []Transform
}

// New builds the standard pipeline: quotes, keyword spacing, conditional split.
func New(opt Options) *Pipeline {
	return &Pipeline{steps: []Transform{
		{Name: "quotes", Apply: NormalizeQuotes},
		{Name: "keyword-parens", Apply: SpaceKeywordParens},
		{Name: "conditionals", Apply: SplitConditionals(opt.indent())},
	}}
}

// Default returns New with zero Options.
func Default() *Pipeline { return New(Options{}) }

// Apply runs every transform in order and returns the final text.
func (p *Pipeline) Apply(text string) string {
	return p.ApplyEach(text, nil)
}

// ApplyEach is Apply with a hook that observes every step. changed reports
// whether the step altered the text.
func (p *Pipeline) ApplyEach(text string, hook func(step string, changed bool)) string {
	for _, step := range p.steps {
		next := step.Apply(text)
		if hook != nil {
			hook(step.Name, next != text)
		}
		text = next
	}
	return text
}

// Names lists the transform names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.steps))
	for _, step := range p.steps {
		names = append(names, step.Name)
	}
	return names
}
