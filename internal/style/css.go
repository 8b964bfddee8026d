package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS extracts custom-property declarations ("--name: value") from a
// stylesheet. Selectors are ignored and later declarations win. Declarations
// inside block at-rules (@media, @supports, ...) are skipped, since their
// conditions cannot be evaluated here.
func ParseCSS(r io.Reader) (map[string]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	out := map[string]string{}
	p := css.NewParser(parse.NewInputBytes(raw), false)
	atDepth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == io.EOF {
				return out, nil
			}
			var perr *parse.Error
			if errors.As(err, &perr) {
				continue
			}
			return nil, fmt.Errorf("parse stylesheet: %w", err)
		case css.BeginAtRuleGrammar:
			atDepth++
		case css.EndAtRuleGrammar:
			if atDepth > 0 {
				atDepth--
			}
		case css.CustomPropertyGrammar, css.DeclarationGrammar:
			name := string(data)
			if atDepth > 0 || !strings.HasPrefix(name, "--") {
				continue
			}
			out[name] = declValue(p.Values())
		}
	}
}

func declValue(tokens []css.Token) string {
	var b bytes.Buffer
	for _, t := range tokens {
		b.Write(t.Data)
	}
	v := strings.TrimSpace(b.String())
	return strings.TrimSpace(strings.TrimSuffix(v, "!important"))
}

// LoadFile parses the stylesheet at path into v.
func (v *Vars) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()

	decls, err := ParseCSS(f)
	if err != nil {
		return fmt.Errorf("theme %s: %w", path, err)
	}
	v.Apply(decls)
	return nil
}
